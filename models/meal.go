package models

import (
	"time"
)

// Meal is one logged meal. UserID is the ownership anchor: every query
// against this table must filter by it.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	DateTime    time.Time `gorm:"not null" json:"date_time"`
	IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
