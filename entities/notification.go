package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail string     `gorm:"not null;index" json:"user_email"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	FoodID    *uuid.UUID `gorm:"type:uuid" json:"food_id,omitempty"`
	IsRead    bool       `gorm:"not null;default:false" json:"is_read"`
	Timestamp
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}
