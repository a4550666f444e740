package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO against its validate tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
