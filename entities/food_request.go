package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID         uuid.UUID `gorm:"type:uuid;not null;index" json:"food_id"`
	RequesterEmail string    `gorm:"not null;index" json:"requester_email"`
	OwnerEmail     string    `gorm:"not null;index" json:"owner_email"`
	Status         string    `gorm:"not null;default:pending" json:"status"` // pending, accepted, rejected
	Timestamp
}

func (r *FoodRequest) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

// FoodRequestWithFood is the read model for request listings joined with the listing.
type FoodRequestWithFood struct {
	FoodRequest
	FoodName  string `json:"food_name"`
	FoodImage string `json:"food_image"`
}
