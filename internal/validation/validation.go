package validation

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Aadhar numbers are exactly 12 digits, nothing else. This is the only
// format-checked identity field for owners and customers.
var aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)

// IsAadhar reports whether s is a well-formed 12-digit Aadhar number.
func IsAadhar(s string) bool {
	return aadharPattern.MatchString(s)
}

// YearInRange reports whether a model year is plausible: not older than
// 1900 and at most one year into the future (next year's models show up
// in dealerships early).
func YearInRange(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}

// Register installs the custom `aadhar` tag on gin's binding engine so
// request structs can declare it next to the builtin rules.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("aadhar", func(fl validator.FieldLevel) bool {
		return IsAadhar(fl.Field().String())
	})
}
