package field

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequiredMessage is shown under an empty mandatory field.
const RequiredMessage = "Este campo es requerido"

// SignUp is the registration form. Tags reference presets by name.
type SignUp struct {
	Name     string `form:"name" validate:"required_trimmed"`
	Phone    string `form:"phone" validate:"required_trimmed,preset=phone"`
	Email    string `form:"email" validate:"required_trimmed,preset=email"`
	Password string `form:"password" validate:"required_trimmed,preset=password"`
}

// FormErrors maps form keys to the message shown under the field.
type FormErrors map[string]string

// Valid reports whether the form had no errors.
func (e FormErrors) Valid() bool { return len(e) == 0 }

// formValidator builds the registry's form validator once. The "preset" tag
// resolves against the registry at validation time, so presets registered
// later are honoured.
func (r *Registry) formValidator() *validator.Validate {
	r.formOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("form")
		})

		_ = v.RegisterValidation("required_trimmed", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
			p, ok := r.Get(fl.Param())
			if !ok {
				return false
			}
			return !p.Validate(fl.Field().String(), "").IsError
		})

		r.form = v
	})
	return r.form
}

// ValidateSignUp returns the message for every invalid field of form. The
// result is empty when the form can be submitted.
func (r *Registry) ValidateSignUp(form SignUp) FormErrors {
	errs := FormErrors{}

	err := r.formValidator().Struct(form)
	if err == nil {
		return errs
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs["form"] = err.Error()
		return errs
	}

	for _, fe := range ves {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		switch fe.Tag() {
		case "required_trimmed":
			errs[fe.Field()] = RequiredMessage
		case "preset":
			message := DefaultErrorMessage
			if p, ok := r.Get(fe.Param()); ok && p.ErrorMessage != "" {
				message = p.ErrorMessage
			}
			errs[fe.Field()] = message
		default:
			errs[fe.Field()] = DefaultErrorMessage
		}
	}
	return errs
}
