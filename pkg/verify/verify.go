// pkg/verify/verify.go

package verify

import (
	"github.com/go-playground/validator/v10"
)

// One validator instance is fine for pure struct validation; it caches
// parsed tags internally and is safe for concurrent use.
var validate = validator.New()

// Struct validates a Go struct with `validate:` tags
// (playground/validator). Callers translate the raw violation into a
// user-facing message.
func Struct(v any) error {
	return validate.Struct(v)
}

// IsViolation reports whether err came from tag validation, as opposed
// to the struct not being validatable at all.
func IsViolation(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}
