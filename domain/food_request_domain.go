package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessRequestFood       = "Talep alındı, bildirimlerinizi kontrol edin."
	MessageSuccessCreateFoodRequest = "Talep başarıyla gönderildi"
	MessageSuccessGetFoodRequests   = "food requests retrieved successfully"

	MessageFailedRequestFood       = "failed to request food"
	MessageFailedCreateFoodRequest = "Talep oluşturulamadı"
	MessageFailedGetFoodRequests   = "Talepler getirilemedi"

	ErrMissingFoodID = fmt.Errorf("%w: food id is required", ErrInvalidInput)
)

const (
	FoodRequestsReceived = "received"
	FoodRequestsSent     = "sent"
)

type (
	RequestFoodRequest struct {
		ID string `json:"id" form:"id" validate:"required"`
	}

	CreateFoodRequestRequest struct {
		FoodID string `json:"food_id" form:"food_id" validate:"required"`
	}

	FoodRequestResponse struct {
		ID             string    `json:"id"`
		FoodID         string    `json:"food_id"`
		RequesterEmail string    `json:"requester_email"`
		OwnerEmail     string    `json:"owner_email"`
		Status         string    `json:"status"`
		FoodName       string    `json:"food_name,omitempty"`
		FoodImage      string    `json:"food_image,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)

func RequestFoodMessage(name, location, when string) string {
	if location == "" {
		location = "Belirtilmedi"
	}
	if when == "" {
		when = "Belirtilmedi"
	}
	return fmt.Sprintf("Talep ettiğiniz yemek: %s. Lokasyon: %s. Zaman: %s. Afiyet olsun!", name, location, when)
}

func OwnerRequestMessage(name string) string {
	return fmt.Sprintf("\"%s\" yemeği için yeni bir talep aldınız.", name)
}
