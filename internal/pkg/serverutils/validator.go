package serverutils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"noteful-be/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest runs the dto's validate tags and translates the first
// violation into a domain error.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok || len(violations) == 0 {
		return apperror.Unclassified()
	}

	first := violations[0]
	switch first.Tag() {
	case "required":
		return apperror.MissingField(first.Field())
	case "uuid":
		return apperror.InvalidIdentifier(first.Field())
	default:
		return apperror.New(apperror.KindUnclassified, 400, "Invalid request body")
	}
}
