package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct runs the shared validator instance against a tagged struct.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
