package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Food struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	EnglishName string    `json:"english_name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Quantity    string    `gorm:"column:miktar" json:"miktar"` // free text, e.g. "6 porsiyon"
	Time        string    `gorm:"column:zaman" json:"zaman"`
	Location    string    `gorm:"column:lokasyon;index" json:"lokasyon"`
	Status      string    `gorm:"default:hazir" json:"status"` // hazir, yakinda, alindi
	OwnerEmail  *string   `gorm:"index" json:"owner_email"`   // nil for legacy rows

	Requests      []*FoodRequest  `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications []*Notification `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []*Review       `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}
