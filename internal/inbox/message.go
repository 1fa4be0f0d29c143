// Package inbox keeps contact-form messages for the admin inbox.
package inbox

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNew  Status = "new"
	StatusRead Status = "read"
)

// Toggled flips new and read.
func (s Status) Toggled() Status {
	if s == StatusNew {
		return StatusRead
	}
	return StatusNew
}

type StatusFilter string

const (
	FilterAll  StatusFilter = "all"
	FilterNew  StatusFilter = "new"
	FilterRead StatusFilter = "read"
)

// ParseStatusFilter maps unknown or empty values to FilterAll.
func ParseStatusFilter(v string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(v))) {
	case FilterNew:
		return FilterNew
	case FilterRead:
		return FilterRead
	}
	return FilterAll
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    Status    `json:"status"`
}

// Filter keeps messages matching both q (name, email, subject or message,
// ignoring case, q taken literally) and the status filter.
func Filter(records []ContactMessage, q string, status StatusFilter) []ContactMessage {
	q = strings.ToLower(q)
	out := make([]ContactMessage, 0, len(records))
	for _, m := range records {
		if status != FilterAll && status != "" && string(m.Status) != string(status) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Email), q) &&
			!strings.Contains(strings.ToLower(m.Subject), q) &&
			!strings.Contains(strings.ToLower(m.Message), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// NextSelection decides which message the preview pane shows after the
// list changed. The current selection survives while it is still listed;
// otherwise the first remaining message is chosen, or none.
func NextSelection(filtered []ContactMessage, selectedID string) string {
	if selectedID == "" {
		return ""
	}
	for _, m := range filtered {
		if m.ID == selectedID {
			return selectedID
		}
	}
	if len(filtered) > 0 {
		return filtered[0].ID
	}
	return ""
}

func seedMessages(now time.Time, newID func() string) []ContactMessage {
	return []ContactMessage{
		{
			ID:        newID(),
			Name:      "Ahmad Fauzi",
			Email:     "ahmad@example.com",
			Phone:     "081234567890",
			Subject:   "Informasi Pendaftaran",
			Message:   "Assalamualaikum, saya ingin menanyakan jadwal pendaftaran dan persyaratan dokumen yang harus disiapkan. Terima kasih.",
			CreatedAt: now.Add(-2 * time.Hour),
			Status:    StatusNew,
		},
		{
			ID:        newID(),
			Name:      "Siti Rahma",
			Email:     "siti.rahma@example.com",
			Phone:     "082233445566",
			Subject:   "Kunjungan Sekolah",
			Message:   "Apakah saya bisa melakukan kunjungan sekolah minggu depan? Mohon informasi hari dan jam yang tersedia.",
			CreatedAt: now.Add(-5 * time.Hour),
			Status:    StatusRead,
		},
		{
			ID:        newID(),
			Name:      "Budi Setiawan",
			Email:     "budi.s@example.com",
			Subject:   "Beasiswa",
			Message:   "Apakah tersedia program beasiswa untuk siswa berprestasi? Jika ada, bagaimana prosedurnya?",
			CreatedAt: now.Add(-26 * time.Hour),
			Status:    StatusNew,
		},
		{
			ID:        newID(),
			Name:      "Dewi Lestari",
			Email:     "dewi.lestari@example.com",
			Phone:     "08199887766",
			Subject:   "Kegiatan Ekstrakurikuler",
			Message:   "Saya ingin mengetahui daftar kegiatan ekstrakurikuler yang tersedia beserta jadwalnya.",
			CreatedAt: now.Add(-48 * time.Hour),
			Status:    StatusRead,
		},
	}
}
