package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedLocation struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail    string    `gorm:"not null;index" json:"user_email"`
	Title        string    `gorm:"column:baslik" json:"baslik"`
	Region       string    `gorm:"column:il;not null" json:"il"`
	District     string    `gorm:"column:ilce;not null" json:"ilce"`
	Neighborhood string    `gorm:"column:mahalle" json:"mahalle"`
	Street       string    `gorm:"column:sokak" json:"sokak"`
	Timestamp
}

func (l *SavedLocation) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
