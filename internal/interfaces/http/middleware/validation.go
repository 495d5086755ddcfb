package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// SetupValidator configures the binding validator so that error reports
// name fields by their json (or form) tag instead of the Go field name.
// Call once at startup, before the engine starts serving.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// FormatBindingErrors converts validator failures from request binding
// into field errors. Returns nil when err does not carry per-field
// validation detail, in which case the caller reports the raw error.
func FormatBindingErrors(err error) []shared.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make([]shared.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, shared.FieldError{
			Field:   e.Field(),
			Code:    bindingErrorCode(e),
			Message: bindingErrorMessage(e),
		})
	}
	return fields
}

func bindingErrorCode(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return shared.FieldRequired
	case "min", "max", "len":
		return shared.FieldRange
	default:
		return shared.FieldFormat
	}
}

func bindingErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Ce champ est obligatoire"
	case "email":
		return "Adresse email invalide"
	case "min":
		if e.Kind() == reflect.String {
			return "Doit contenir au moins " + e.Param() + " caractères"
		}
		return "Doit être au moins " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Doit contenir au plus " + e.Param() + " caractères"
		}
		return "Doit être au plus " + e.Param()
	case "len":
		return "Doit contenir exactement " + e.Param() + " caractères"
	case "oneof":
		return "Doit être l'une des valeurs: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "uuid":
		return "Identifiant invalide"
	case "gt":
		return "Doit être strictement supérieur à " + e.Param()
	case "gte":
		return "Doit être supérieur ou égal à " + e.Param()
	default:
		return "Valeur invalide"
	}
}
