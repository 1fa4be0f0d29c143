package models

import "time"

// Collection is one whole-document record of the postgres KV backend:
// formSchema, registrar_applicants, contact_messages, inbox_visible_cols.
// Value holds the JSON text as written; it is not parsed on the database side
// so a corrupt document can still be read back and replaced.
type Collection struct {
	Key       string    `gorm:"size:128;primaryKey"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Collection) TableName() string {
	return "kv_collections"
}
