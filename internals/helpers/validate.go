package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for all DTOs
var Validate = validator.New()

// ValidationErrorMap flattens validator.v10 errors into field → messages
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
