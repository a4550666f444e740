package dto

// ContactRequest is the wire body of the bare relay endpoint.
type ContactRequest struct {
	ToEmail   string `json:"toEmail" validate:"required,email"`
	FromName  string `json:"fromName" validate:"required"`
	FromEmail string `json:"fromEmail" validate:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" validate:"required"`
	Subject   string `json:"subject"`
	ReplyTo   string `json:"replyTo"`
}

// ContactSellerRequest is the inquiry body for a specific animal; the
// recipient is resolved server-side.
type ContactSellerRequest struct {
	FromName  string `json:"fromName" validate:"required"`
	FromEmail string `json:"fromEmail" validate:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" validate:"required"`
}

type ContactResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
