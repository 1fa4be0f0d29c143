package inbox

import (
	"context"
	"strings"

	"github.com/zaqqye/spmb_backend/internal/validation"
)

// ContactForm is the public contact-form submission.
type ContactForm struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"notblank"`
}

// Validate reports blank required fields as a *validation.ValidationError.
func (f ContactForm) Validate() error {
	return validation.Struct(f, "Lengkapi Data")
}

func (f ContactForm) trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Submit validates the form and appends it to the store. The form itself is
// never modified so a failed submit leaves the draft with the caller.
func (f ContactForm) Submit(ctx context.Context, store *Store) (ContactMessage, error) {
	if err := f.Validate(); err != nil {
		return ContactMessage{}, err
	}
	t := f.trimmed()
	return store.Append(ctx, ContactMessage{
		Name:    t.Name,
		Email:   t.Email,
		Phone:   t.Phone,
		Subject: t.Subject,
		Message: t.Message,
	})
}
