package formschema

import (
	"context"
	"fmt"
	"sync"
)

type SaveStatus string

const (
	StatusIdle   SaveStatus = "idle"
	StatusSaving SaveStatus = "saving"
	StatusSaved  SaveStatus = "saved"
	StatusFailed SaveStatus = "failed"
)

// Editor holds an in-memory draft of the schema. Toggles only touch the
// draft; nothing is persisted until Save.
type Editor struct {
	store *Store

	mu     sync.Mutex
	draft  Schema
	status SaveStatus
}

func NewEditor(store *Store) *Editor {
	return &Editor{store: store, draft: Default(), status: StatusIdle}
}

// Load replaces the draft with the persisted schema.
func (e *Editor) Load(ctx context.Context) {
	schema := e.store.Load(ctx)
	e.mu.Lock()
	e.draft = schema
	e.status = StatusIdle
	e.mu.Unlock()
}

// Open replaces the draft with the persisted schema like Load, but fails
// when storage cannot be read so the draft never starts from a stand-in.
func (e *Editor) Open(ctx context.Context) error {
	schema, err := e.store.Read(ctx)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.draft = schema
	e.status = StatusIdle
	e.mu.Unlock()
	return nil
}

func (e *Editor) Schema() Schema {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

func (e *Editor) Sections() []SectionView {
	return e.Schema().Grouped(false)
}

func (e *Editor) Status() SaveStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// ToggleEnabled sets enabled; unchecking also clears required.
func (e *Editor) ToggleEnabled(key FieldKey, checked bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg, ok := e.draft[key]
	if !ok {
		return fmt.Errorf("unknown field %q", key)
	}
	cfg.Enabled = checked
	if !checked {
		cfg.Required = false
	}
	e.draft[key] = cfg
	return nil
}

// ToggleRequired sets required. It is ignored while the field is disabled.
func (e *Editor) ToggleRequired(key FieldKey, checked bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg, ok := e.draft[key]
	if !ok {
		return fmt.Errorf("unknown field %q", key)
	}
	if !cfg.Enabled {
		return nil
	}
	cfg.Required = checked
	e.draft[key] = cfg
	return nil
}

// Save writes the draft once; no retry.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	e.status = StatusSaving
	draft := e.draft.Clone()
	e.mu.Unlock()

	err := e.store.Save(ctx, draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.status = StatusFailed
		return err
	}
	e.status = StatusSaved
	return nil
}

// Reset restores the default schema in storage and reloads the draft.
func (e *Editor) Reset(ctx context.Context) error {
	if err := e.store.Reset(ctx); err != nil {
		return err
	}
	e.Load(ctx)
	return nil
}
