package inbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zaqqye/spmb_backend/internal/kv"
)

const columnsKey = "inbox_visible_cols"

type ColumnKey string

const (
	ColumnTime    ColumnKey = "time"
	ColumnName    ColumnKey = "name"
	ColumnEmail   ColumnKey = "email"
	ColumnPhone   ColumnKey = "phone"
	ColumnSubject ColumnKey = "subject"
	ColumnMessage ColumnKey = "message"
	ColumnStatus  ColumnKey = "status"
	ColumnActions ColumnKey = "actions"
)

// ColumnKeys lists the inbox table columns in display order.
var ColumnKeys = []ColumnKey{
	ColumnTime, ColumnName, ColumnEmail, ColumnPhone,
	ColumnSubject, ColumnMessage, ColumnStatus, ColumnActions,
}

// Columns maps every column to its visibility.
type Columns map[ColumnKey]bool

func DefaultColumns() Columns {
	c := make(Columns, len(ColumnKeys))
	for _, k := range ColumnKeys {
		c[k] = true
	}
	return c
}

func IsColumn(k ColumnKey) bool {
	for _, c := range ColumnKeys {
		if c == k {
			return true
		}
	}
	return false
}

func (c Columns) visibleCount() int {
	n := 0
	for _, k := range ColumnKeys {
		if c[k] {
			n++
		}
	}
	return n
}

// Visible returns the shown columns in display order.
func (c Columns) Visible() []ColumnKey {
	out := make([]ColumnKey, 0, len(ColumnKeys))
	for _, k := range ColumnKeys {
		if c[k] {
			out = append(out, k)
		}
	}
	return out
}

// ErrUnknownColumn is returned when toggling a column that does not exist.
var ErrUnknownColumn = errors.New("unknown column")

// ColumnStore persists the inbox column-visibility preference.
type ColumnStore struct {
	kv  kv.Store
	log *zap.Logger
	mu  sync.Mutex
}

func NewColumnStore(s kv.Store, log *zap.Logger) *ColumnStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ColumnStore{kv: s, log: log}
}

// Load returns the stored preference merged over all-visible defaults.
// A failed read serves the defaults.
func (s *ColumnStore) Load(ctx context.Context) Columns {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, err := s.load(ctx)
	if err != nil {
		s.log.Warn("inbox columns read failed, using default", zap.Error(err))
		return DefaultColumns()
	}
	return cols
}

func (s *ColumnStore) load(ctx context.Context) (Columns, error) {
	cols := DefaultColumns()
	var stored map[ColumnKey]bool
	err := kv.GetJSON(ctx, s.kv, columnsKey, &stored)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return cols, nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.Warn("inbox columns corrupt, using default", zap.Error(err))
		return cols, nil
	case err != nil:
		return nil, fmt.Errorf("load inbox columns: %w", err)
	}
	for k, v := range stored {
		if IsColumn(k) {
			cols[k] = v
		}
	}
	if cols.visibleCount() == 0 {
		return DefaultColumns(), nil
	}
	return cols, nil
}

// Toggle flips the visibility of key. Hiding the last visible column is a
// no-op and returns the unchanged preference.
func (s *ColumnStore) Toggle(ctx context.Context, key ColumnKey) (Columns, error) {
	if !IsColumn(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if cols[key] && cols.visibleCount() == 1 {
		return cols, nil
	}
	cols[key] = !cols[key]
	if err := kv.SetJSON(ctx, s.kv, columnsKey, cols); err != nil {
		return nil, fmt.Errorf("save inbox columns: %w", err)
	}
	return cols, nil
}
