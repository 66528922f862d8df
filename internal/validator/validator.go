package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/digitalt3/lms-core-api/internal/utils"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator wraps go-playground/validator with the custom rules used by the
// request DTOs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// slug: lowercase alphanumerics separated by single hyphens.
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate runs struct-tag validation and converts failures into field-level
// validation errors.
func (v *Validator) Validate(s any) utils.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs utils.ValidationErrors
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs = append(errs, utils.ValidationError{
				Field:   fe.Field(),
				Message: messageFor(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return errs
	}

	return utils.ValidationErrors{{Field: "", Message: err.Error(), Rule: "struct"}}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "slug":
		return "must be a lowercase hyphenated slug"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
