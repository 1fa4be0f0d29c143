// Package validation holds the field-level error type returned by the public
// forms and the validator instance that produces it.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const NotBlankTag = "notblank"

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Messages keyed by validation tag.
var messages = map[string]string{
	"required":  "wajib diisi",
	NotBlankTag: "wajib diisi",
	"email":     "format email tidak valid",
	"url":       "format URL tidak valid",
	"oneof":     "nilai tidak valid",
	"min":       "nilai terlalu kecil",
	"max":       "nilai terlalu besar",
	"gte":       "nilai terlalu kecil",
	"lte":       "nilai terlalu besar",
}

// Register applies the shared configuration to a validator: JSON tag names
// in errors and the notblank tag.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(NotBlankTag, notBlank)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

var ginOnce sync.Once

// RegisterGin applies Register to gin's binding validator so request structs
// can use notblank and report JSON field names.
func RegisterGin() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Register(v)
		}
	})
}

var validate = func() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}()

// Struct validates s and converts failures into a *ValidationError carrying summary.
func Struct(s any, summary string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return FromValidator(verrs, summary)
}

// FromValidator converts validator errors into a *ValidationError.
func FromValidator(verrs validator.ValidationErrors, summary string) *ValidationError {
	out := &ValidationError{Message: summary}
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "nilai tidak valid"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
