// Package applicants keeps SPMB applicant records: the admin table, the
// public registrar lookup and the registration submit all read from Store.
package applicants

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// StatusLabel is the text shown on the public registrar page.
func StatusLabel(s Status) string {
	switch s {
	case StatusApproved:
		return "disetujui"
	case StatusDeclined:
		return "tertolak"
	case StatusPending:
		return "sedang di tinjau"
	default:
		return "sedang di tinjau"
	}
}

type Applicant struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Status    Status         `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
}

// Search keeps records whose id, name, email or phone contains q, ignoring case.
// q is matched as given; an empty q returns records unchanged.
func Search(records []Applicant, q string) []Applicant {
	q = strings.ToLower(q)
	if q == "" {
		return records
	}
	out := make([]Applicant, 0, len(records))
	for _, a := range records {
		if strings.Contains(strings.ToLower(a.ID), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Email), q) ||
			strings.Contains(strings.ToLower(a.Phone), q) {
			out = append(out, a)
		}
	}
	return out
}

func seedApplicants(now time.Time) []Applicant {
	return []Applicant{
		{
			ID:        "REG-2025-0001",
			Name:      "Ahmad Setiawan",
			Email:     "ahmad@example.com",
			Phone:     "0812-1111-2222",
			CreatedAt: now,
			Status:    StatusPending,
			Details:   map[string]any{"sekolahAsal": "SMP 1", "alamat": "Jl. Merdeka", "nilaiRata": "88"},
		},
		{
			ID:        "REG-2025-0002",
			Name:      "Siti Rahma",
			Email:     "siti@example.com",
			Phone:     "0813-3333-4444",
			CreatedAt: now,
			Status:    StatusApproved,
			Details:   map[string]any{"sekolahAsal": "SMP 2", "alamat": "Jl. Anggrek", "nilaiRata": "91"},
		},
		{
			ID:        "REG-2025-0003",
			Name:      "Budi Santoso",
			Email:     "budi@example.com",
			Phone:     "0812-5555-6666",
			CreatedAt: now,
			Status:    StatusDeclined,
			Details:   map[string]any{"sekolahAsal": "SMP 3", "alamat": "Jl. Melati", "nilaiRata": "76"},
		},
	}
}
