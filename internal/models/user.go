package models

import (
    "time"
)

const (
    RoleAdmin  = "admin"
    RoleEditor = "editor"
)

type User struct {
    ID        uint      `gorm:"primaryKey"`
    UserID    string    `gorm:"uniqueIndex"`
    FullName  string
    Email     string    `gorm:"uniqueIndex"`
    Password  string
    Role      string
    Active    bool
    LastLogin *time.Time
    CreatedAt time.Time
    UpdatedAt time.Time
}
