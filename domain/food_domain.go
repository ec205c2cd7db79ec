package domain

import (
	"fmt"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFood      = "food added successfully"
	MessageSuccessDeleteFood   = "food deleted successfully"
	MessageSuccessGetFoods     = "foods retrieved successfully"
	MessageSuccessUploadImage  = "food image uploaded successfully"
	MessageSuccessPortionTaken = "Sipariş alındı!"
	MessageSuccessFoodTaken    = "Yemek alındı!"
	MessageFoodNotFound        = "Food not found"

	MessageFailedAddFood     = "failed to add food"
	MessageFailedDeleteFood  = "failed to delete food"
	MessageFailedGetFoods    = "failed to retrieve foods"
	MessageFailedTakeFood    = "failed to take food"
	MessageFailedUploadImage = "failed to upload food image"

	ErrFoodNotFound       = fmt.Errorf("%w: food not found", ErrNotFound)
	ErrFoodOwnerNotFound  = fmt.Errorf("%w: food not found or has no owner", ErrNotFound)
	ErrMissingFoodFields  = fmt.Errorf("%w: name, miktar, zaman, aciklama and lokasyon are required", ErrInvalidInput)
	ErrFoodAccessDenied   = fmt.Errorf("%w: food belongs to another user", ErrUnauthorized)
	ErrStorageUnavailable = fmt.Errorf("%w: image storage is not configured", ErrInvalidInput)
)

const DefaultFoodImage = "images/default.jpg"

type (
	AddFoodRequest struct {
		Name        string `json:"name" form:"name" validate:"required"`
		Quantity    string `json:"miktar" form:"miktar" validate:"required"`
		Time        string `json:"zaman" form:"zaman" validate:"required"`
		Description string `json:"aciklama" form:"aciklama" validate:"required"`
		Location    string `json:"lokasyon" form:"lokasyon" validate:"required"`
		Image       string `json:"image" form:"image" validate:"omitempty"`
	}

	// FoodIDRequest is shared by the form posts that carry a single listing id.
	// Older forms send the id as "index".
	FoodIDRequest struct {
		ID    string `json:"id" form:"id"`
		Index string `json:"index" form:"index"`
	}

	FoodFilter struct {
		Location     string `query:"lokasyon"`
		FoodID       string `query:"foodId"`
		SameLocation bool   `query:"same_location"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `validate:"required,uuid"`
		Image  *multipart.FileHeader `validate:"required"`
	}

	FoodResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		EnglishName string    `json:"english_name,omitempty"`
		Image       string    `json:"image"`
		Description string    `json:"description"`
		Quantity    string    `json:"miktar"`
		Time        string    `json:"zaman"`
		Location    string    `json:"lokasyon"`
		Status      string    `json:"status"`
		OwnerEmail  *string   `json:"owner_email"`
		CreatedAt   time.Time `json:"created_at"`
	}

	GiverDashboardResponse struct {
		Foods          []FoodResponse     `json:"foods"`
		SavedLocations []LocationResponse `json:"saved_locations"`
	}

	FulfillPortionResponse struct {
		ID       string `json:"id"`
		Quantity string `json:"miktar"`
		Status   string `json:"status"`
		Message  string `json:"message"`
	}
)

// Value returns the listing id from whichever field the form used.
func (r FoodIDRequest) Value() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Index
}
