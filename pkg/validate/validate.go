// Package validate aplica las etiquetas `validate:"..."` de los DTOs de entrada.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Usar el nombre JSON en los mensajes para que coincidan con el cuerpo recibido.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return val
}

// Error agrupa los errores de validación por campo.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// Struct valida s. Devuelve *Error con un mensaje por campo o nil.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s admite como máximo %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s debe ser mayor que %s", fe.Field(), fe.Param())
	case "required_without":
		return fmt.Sprintf("%s es requerido si falta %s", fe.Field(), fe.Param())
	case "required_unless":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s debe tener el formato %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s debe ser una URL", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s debe ser un UUID", fe.Field())
	default:
		return fmt.Sprintf("%s no es válido (%s)", fe.Field(), fe.Tag())
	}
}
