package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"not null" json:"role"` // yemek_veren, yemek_alan

	SavedLocations []*SavedLocation `gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE" json:"-"`
	Notifications  []*Notification  `gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
