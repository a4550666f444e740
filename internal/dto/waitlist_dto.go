package dto

type WaitlistRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Country  string `json:"country"`
	UserType string `json:"user_type"`
}

type WaitlistResponse struct {
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
}
