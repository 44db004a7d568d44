package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string `json:"field"`
	Tag         string `json:"rule"`
	Value       string `json:"param"`
}

var validate = validator.New()

func init() {
	// purchase_date is deliberately permissive: a plain calendar date or a
	// full RFC 3339 timestamp are both accepted.
	validate.RegisterValidation("purchasedate", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := ParseDate(s)
		return err == nil
	})
}

// ParseDate parses a purchase date in either date-only or RFC 3339 form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ValidateStruct reports every violated constraint, not just the first.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
