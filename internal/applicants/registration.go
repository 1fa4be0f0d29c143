package applicants

import (
	"context"
	"fmt"
	"strings"

	"github.com/zaqqye/spmb_backend/internal/formschema"
	"github.com/zaqqye/spmb_backend/internal/validation"
)

// Registration is a public form submission: field key to entered value.
type Registration map[string]any

// Validate checks the submission against the active schema. Every enabled
// and required field must hold a non-blank value.
func (r Registration) Validate(schema formschema.Schema) error {
	var fields []validation.FieldError
	for _, k := range schema.RequiredKeys() {
		if isBlank(r[string(k)]) {
			fields = append(fields, validation.FieldError{
				Field:   string(k),
				Message: fmt.Sprintf("%s wajib diisi", schema[k].Label),
			})
		}
	}
	if len(fields) > 0 {
		return &validation.ValidationError{Message: "Lengkapi Data", Fields: fields}
	}
	return nil
}

// Applicant projects the submission onto an applicant record. Only fields
// enabled in schema are kept in Details.
func (r Registration) Applicant(schema formschema.Schema) Applicant {
	details := make(map[string]any)
	for _, k := range formschema.FieldKeys {
		if !schema[k].Enabled {
			continue
		}
		v, ok := r[string(k)]
		if !ok || isBlank(v) {
			continue
		}
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		details[string(k)] = v
	}
	return Applicant{
		Name:    stringValue(details[string(formschema.NamaLengkap)]),
		Email:   stringValue(details[string(formschema.Email)]),
		Phone:   stringValue(details[string(formschema.NoHP)]),
		Details: details,
	}
}

// Submit validates r against the active schema and stores a new pending applicant.
func Submit(ctx context.Context, store *Store, schema formschema.Schema, r Registration) (Applicant, error) {
	if err := r.Validate(schema); err != nil {
		return Applicant{}, err
	}
	return store.Create(ctx, r.Applicant(schema))
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	}
	return false
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
