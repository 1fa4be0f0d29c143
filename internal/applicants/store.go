package applicants

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zaqqye/spmb_backend/internal/kv"
)

const storageKey = "registrar_applicants"

// Store owns the registrar_applicants collection. Every mutation writes the
// whole list back before returning it.
type Store struct {
	kv  kv.Store
	log *zap.Logger
	now func() time.Time

	mu sync.Mutex
}

func NewStore(s kv.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: s, log: log, now: time.Now}
}

// List returns all applicants in insertion order, seeding the demo set
// when nothing has been stored yet. While storage is unreadable the demo set
// is served without being written.
func (s *Store) List(ctx context.Context) []Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		s.log.Warn("applicants read failed, serving seed", zap.Error(err))
		return seedApplicants(s.now().UTC())
	}
	return list
}

// load reads the stored collection. A missing or corrupt document is
// replaced by the seed; a backend failure is returned so that no mutation
// builds on data it never saw.
func (s *Store) load(ctx context.Context) ([]Applicant, error) {
	var list []Applicant
	err := kv.GetJSON(ctx, s.kv, storageKey, &list)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return s.seed(ctx), nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.Warn("applicants corrupt, reseeding", zap.Error(err))
		return s.seed(ctx), nil
	case err != nil:
		return nil, fmt.Errorf("load applicants: %w", err)
	}
	if list == nil {
		list = []Applicant{}
	}
	return list, nil
}

func (s *Store) seed(ctx context.Context) []Applicant {
	list := seedApplicants(s.now().UTC())
	if err := kv.SetJSON(ctx, s.kv, storageKey, list); err != nil {
		s.log.Warn("applicants seed write failed", zap.Error(err))
	}
	return list
}

func (s *Store) save(ctx context.Context, list []Applicant) error {
	if err := kv.SetJSON(ctx, s.kv, storageKey, list); err != nil {
		return fmt.Errorf("save applicants: %w", err)
	}
	return nil
}

// FindByID looks up a registration number. Surrounding spaces and letter
// case are ignored. A miss is reported through the bool, not an error.
func (s *Store) FindByID(ctx context.Context, id string) (Applicant, bool) {
	list := s.List(ctx)
	if idx := indexOf(list, id); idx >= 0 {
		return list[idx], true
	}
	return Applicant{}, false
}

// SetStatus replaces the status of one applicant, matching id the way
// FindByID does. Setting the current status again is a no-op write with the
// same result.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("invalid status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return false, nil
	}
	next := make([]Applicant, len(list))
	copy(next, list)
	next[idx].Status = status
	if err := s.save(ctx, next); err != nil {
		return true, err
	}
	return true, nil
}

// Remove deletes one applicant; a missing id leaves the store untouched.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return false, nil
	}
	next := make([]Applicant, 0, len(list)-1)
	next = append(next, list[:idx]...)
	next = append(next, list[idx+1:]...)
	return true, s.save(ctx, next)
}

// Create appends a new pending applicant under the next registration number
// of the current year.
func (s *Store) Create(ctx context.Context, a Applicant) (Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Applicant{}, err
	}
	now := s.now().UTC()
	a.ID = NextRegistrationNumber(list, now.Year())
	a.CreatedAt = now
	a.Status = StatusPending

	next := make([]Applicant, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, a)
	if err := s.save(ctx, next); err != nil {
		return Applicant{}, err
	}
	return a, nil
}

// indexOf matches registration numbers ignoring surrounding spaces and case.
func indexOf(list []Applicant, id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	for i, a := range list {
		if strings.EqualFold(a.ID, id) {
			return i
		}
	}
	return -1
}

// NextRegistrationNumber returns REG-<year>-<seq> with seq one past the
// highest sequence already issued for that year.
func NextRegistrationNumber(list []Applicant, year int) string {
	prefix := fmt.Sprintf("REG-%04d-", year)
	highest := 0
	for _, a := range list {
		id := strings.ToUpper(a.ID)
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, highest+1)
}
