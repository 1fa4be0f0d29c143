package formschema

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zaqqye/spmb_backend/internal/kv"
)

const storageKey = "formSchema"

type Store struct {
	kv  kv.Store
	log *zap.Logger
}

func NewStore(s kv.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: s, log: log}
}

type storedField struct {
	Enabled  *bool `json:"enabled"`
	Required *bool `json:"required"`
}

// Load returns the persisted schema merged over the default. It never fails:
// a missing, unreadable or corrupt blob yields the default schema.
func (s *Store) Load(ctx context.Context) Schema {
	schema, err := s.Read(ctx)
	if err != nil {
		s.log.Warn("form schema read failed, using default", zap.Error(err))
		return Default()
	}
	return schema
}

// Read is Load for callers about to write: an unreachable backend is
// returned as an error instead of being papered over with the default.
func (s *Store) Read(ctx context.Context) (Schema, error) {
	var stored map[FieldKey]storedField
	err := kv.GetJSON(ctx, s.kv, storageKey, &stored)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return Default(), nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.Warn("form schema corrupt, using default", zap.Error(err))
		return Default(), nil
	case err != nil:
		return nil, fmt.Errorf("load form schema: %w", err)
	}
	return merge(Default(), stored), nil
}

func merge(schema Schema, stored map[FieldKey]storedField) Schema {
	for k, def := range schema {
		st, ok := stored[k]
		if !ok {
			continue
		}
		if st.Enabled != nil {
			def.Enabled = *st.Enabled
		}
		if st.Required != nil {
			def.Required = *st.Required
		}
		if !def.Enabled {
			def.Required = false
		}
		schema[k] = def
	}
	return schema
}

// Save persists the full schema verbatim.
func (s *Store) Save(ctx context.Context, schema Schema) error {
	return kv.SetJSON(ctx, s.kv, storageKey, schema)
}

// Reset drops the persisted schema so the default applies again; callers reload.
func (s *Store) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, storageKey)
}
