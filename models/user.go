package models

import (
	"time"
)

// User is the durable identity behind an anonymous session. It is created
// lazily the first time a client opens a session without a cookie; the
// session token is issued once and never changes afterwards.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	SessionToken string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
