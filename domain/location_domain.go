package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetLocations   = "locations retrieved successfully"
	MessageSuccessCreateLocation = "Konum başarıyla kaydedildi"
	MessageSuccessDeleteLocation = "Konum silindi"

	MessageFailedGetLocations   = "Konumlar getirilemedi"
	MessageFailedCreateLocation = "Konum kaydedilemedi"
	MessageFailedDeleteLocation = "Konum silinemedi"

	ErrMissingRegion    = fmt.Errorf("%w: il and ilce are required", ErrInvalidInput)
	ErrLocationNotFound = fmt.Errorf("%w: location not found", ErrNotFound)
)

type (
	CreateLocationRequest struct {
		Title        string `json:"baslik" form:"baslik"`
		Region       string `json:"il" form:"il" validate:"required"`
		District     string `json:"ilce" form:"ilce" validate:"required"`
		Neighborhood string `json:"mahalle" form:"mahalle"`
		Street       string `json:"sokak" form:"sokak"`
	}

	LocationResponse struct {
		ID           string    `json:"id"`
		Title        string    `json:"baslik"`
		Region       string    `json:"il"`
		District     string    `json:"ilce"`
		Neighborhood string    `json:"mahalle"`
		Street       string    `json:"sokak"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
