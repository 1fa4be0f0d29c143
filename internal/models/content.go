package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// SchoolProfile is a singleton row describing the school shown on the public profile pages.
type SchoolProfile struct {
    ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
    Name          string         `json:"name"`
    Address       string         `gorm:"type:text" json:"address"`
    Phone         string         `json:"phone"`
    Email         string         `json:"email"`
    Website       string         `json:"website"`
    Established   int            `json:"established"`
    Accreditation string         `json:"accreditation"`
    Vision        string         `gorm:"type:text" json:"vision"`
    Mission       datatypes.JSON `gorm:"type:jsonb" json:"mission"`
    Goals         datatypes.JSON `gorm:"type:jsonb" json:"goals"`
    Indicators    datatypes.JSON `gorm:"type:jsonb" json:"indicators"`
    History       string         `gorm:"type:text" json:"history"`
    CreatedAt     time.Time      `json:"created_at"`
    UpdatedAt     time.Time      `json:"updated_at"`
}

// Leadership covers the structure page: principal, foundation board, homeroom and subject teachers.
type Leadership struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name      string    `json:"name"`
    Position  string    `json:"position"`
    Category  string    `gorm:"index" json:"category"`
    Subject   string    `json:"subject"`
    Class     string    `json:"class"`
    Order     int       `gorm:"column:sort_order" json:"order"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

type Facility struct {
    ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name        string    `json:"name"`
    Description string    `gorm:"type:text" json:"description"`
    Category    string    `gorm:"index" json:"category"`
    Icon        string    `json:"icon"`
    Order       int       `gorm:"column:sort_order" json:"order"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

type Program struct {
    ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name        string    `json:"name"`
    Description string    `gorm:"type:text" json:"description"`
    Category    string    `gorm:"index" json:"category"`
    Icon        string    `json:"icon"`
    Order       int       `gorm:"column:sort_order" json:"order"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

type Subject struct {
    ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name        string    `json:"name"`
    Category    string    `gorm:"index" json:"category"`
    Description string    `gorm:"type:text" json:"description"`
    Order       int       `gorm:"column:sort_order" json:"order"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}

type FAQ struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Question  string    `gorm:"type:text" json:"question"`
    Answer    string    `gorm:"type:text" json:"answer"`
    Category  string    `gorm:"index" json:"category"`
    Order     int       `gorm:"column:sort_order" json:"order"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (FAQ) TableName() string { return "faqs" }

// RegistrationWave is one gelombang: a registration window.
type RegistrationWave struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name      string    `json:"name"`
    StartDate time.Time `json:"start_date"`
    EndDate   time.Time `json:"end_date"`
    IsActive  bool      `gorm:"index" json:"is_active"`
    Order     int       `gorm:"column:sort_order" json:"order"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// RegistrationPathway is one jalur with its fee terms.
type RegistrationPathway struct {
    ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
    Name         string         `json:"name"`
    Description  string         `gorm:"type:text" json:"description"`
    Requirements datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
    BaseFee      float64        `json:"base_fee"`
    Discount     float64        `json:"discount"`
    Order        int            `gorm:"column:sort_order" json:"order"`
    CreatedAt    time.Time      `json:"created_at"`
    UpdatedAt    time.Time      `json:"updated_at"`
}

func newID(id *string) {
    if *id == "" {
        *id = uuid.NewString()
    }
}

func (m *SchoolProfile) BeforeCreate(tx *gorm.DB) error       { newID(&m.ID); return nil }
func (m *Leadership) BeforeCreate(tx *gorm.DB) error          { newID(&m.ID); return nil }
func (m *Facility) BeforeCreate(tx *gorm.DB) error            { newID(&m.ID); return nil }
func (m *Program) BeforeCreate(tx *gorm.DB) error             { newID(&m.ID); return nil }
func (m *Subject) BeforeCreate(tx *gorm.DB) error             { newID(&m.ID); return nil }
func (m *FAQ) BeforeCreate(tx *gorm.DB) error                 { newID(&m.ID); return nil }
func (m *RegistrationWave) BeforeCreate(tx *gorm.DB) error    { newID(&m.ID); return nil }
func (m *RegistrationPathway) BeforeCreate(tx *gorm.DB) error { newID(&m.ID); return nil }
