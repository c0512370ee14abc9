package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with the custom rules registered. Field
// names in errors come from the json tag, not the Go field name.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
		registerRules(validate)
	})
	return validate
}

// Struct validates v and converts failures into a field->message map usable
// as error details.
func Struct(v interface{}) (map[string]string, error) {
	err := Get().Struct(v)
	if err == nil {
		return nil, nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = messageFor(fe)
	}
	return details, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "is-user-role":
		return "must be one of: user, artist, parlor_owner"
	case "is-guestspot-status":
		return "must be a valid guestspot status"
	case "is-target-type":
		return "must be artist or parlor"
	case "is-appointment-status":
		return "must be a valid appointment status"
	default:
		return "failed validation: " + fe.Tag()
	}
}
