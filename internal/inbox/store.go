package inbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zaqqye/spmb_backend/internal/kv"
)

const messagesKey = "contact_messages"

// Store owns the contact_messages collection, kept newest first.
type Store struct {
	kv    kv.Store
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

func NewStore(s kv.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: s, log: log, now: time.Now, newID: uuid.NewString}
}

// List returns every message newest first, seeding demo messages when the
// collection is missing, corrupt or empty. While storage is unreadable the
// demo messages are served without being written.
func (s *Store) List(ctx context.Context) []ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		s.log.Warn("messages read failed, serving seed", zap.Error(err))
		return seedMessages(s.now().UTC(), s.newID)
	}
	return list
}

// load returns the stored messages, or the read error when the backend is
// unavailable. Mutations never fall back to the seed.
func (s *Store) load(ctx context.Context) ([]ContactMessage, error) {
	var list []ContactMessage
	err := kv.GetJSON(ctx, s.kv, messagesKey, &list)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return s.seed(ctx), nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.Warn("messages corrupt, reseeding", zap.Error(err))
		return s.seed(ctx), nil
	case err != nil:
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if len(list) == 0 {
		return s.seed(ctx), nil
	}
	return list, nil
}

func (s *Store) seed(ctx context.Context) []ContactMessage {
	list := seedMessages(s.now().UTC(), s.newID)
	if err := kv.SetJSON(ctx, s.kv, messagesKey, list); err != nil {
		s.log.Warn("messages seed write failed", zap.Error(err))
	}
	return list
}

func (s *Store) save(ctx context.Context, list []ContactMessage) error {
	if err := kv.SetJSON(ctx, s.kv, messagesKey, list); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	return nil
}

// Get returns one message by id.
func (s *Store) Get(ctx context.Context, id string) (ContactMessage, bool) {
	for _, m := range s.List(ctx) {
		if m.ID == id {
			return m, true
		}
	}
	return ContactMessage{}, false
}

// Append stores m at the head of the list with a fresh id, the current time
// and status new, whatever the caller set.
func (s *Store) Append(ctx context.Context, m ContactMessage) (ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return ContactMessage{}, err
	}
	m.ID = s.newID()
	m.CreatedAt = s.now().UTC()
	m.Status = StatusNew

	next := make([]ContactMessage, 0, len(list)+1)
	next = append(next, m)
	next = append(next, list...)
	if err := s.save(ctx, next); err != nil {
		return ContactMessage{}, err
	}
	return m, nil
}

// ToggleRead flips one message between new and read.
func (s *Store) ToggleRead(ctx context.Context, id string) (ContactMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return ContactMessage{}, false, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return ContactMessage{}, false, nil
	}
	next := make([]ContactMessage, len(list))
	copy(next, list)
	next[idx].Status = next[idx].Status.Toggled()
	if err := s.save(ctx, next); err != nil {
		return ContactMessage{}, true, err
	}
	return next[idx], true, nil
}

// Remove deletes one message; a missing id is a no-op.
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
	next := make([]ContactMessage, 0, len(list)-1)
	next = append(next, list[:idx]...)
	next = append(next, list[idx+1:]...)
	return true, s.save(ctx, next)
}

func indexOf(list []ContactMessage, id string) int {
	for i, m := range list {
		if m.ID == id {
			return i
		}
	}
	return -1
}
