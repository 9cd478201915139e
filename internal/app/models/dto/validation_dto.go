package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError turns a gin binding error into an ErrorDetail with
// per-field messages where available.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			switch fe.Tag() {
			case "required":
				fields = append(fields, fmt.Sprintf("%s is required", fe.Field()))
			default:
				fields = append(fields, fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
			WithDetails(strings.Join(fields, "; "))
	}

	return NewErrorDetail(ErrorCodeInvalidRequest, "Invalid request body").
		WithDetails(err.Error())
}
