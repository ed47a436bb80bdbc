package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report json field names instead of Go struct field names in
	// validation messages.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatBindingError flattens a gin binding error into "field: message"
// strings. Malformed JSON (or any non-validator error) is reported as a
// single body-level message.
func FormatBindingError(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"body: invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), fieldMessage(e)))
	}
	return msgs
}

// fieldMessage renders a human-readable message for a single failed tag.
func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		opts := strings.Split(e.Param(), " ")
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		return "must be one of " + strings.Join(opts, ", ")
	default:
		return "is invalid"
	}
}
