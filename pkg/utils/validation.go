package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a single invalid field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct validates a request DTO and returns the offending fields in
// struct declaration order. Request structs declare fields in the precedence
// the API documents, so the first entry is the field named in error messages.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   strings.ToLower(err.Field()),
				Message: getErrorMessage(err),
			})
		}
	}

	return fieldErrors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// FieldErrorMap reshapes ordered field errors into a lookup for the response body.
func FieldErrorMap(errors []FieldError) map[string]string {
	if len(errors) == 0 {
		return nil
	}
	m := make(map[string]string, len(errors))
	for _, fe := range errors {
		m[fe.Field] = fe.Message
	}
	return m
}

// FirstValidationMessage names the first offending field, e.g. "name: This field is required".
func FirstValidationMessage(errors []FieldError) string {
	if len(errors) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
}
