package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetNotifications    = "notifications retrieved successfully"
	MessageSuccessCreateNotification  = "Bildirim oluşturuldu"
	MessageSuccessMarkNotification    = "Bildirim okundu olarak işaretlendi"
	MessageSuccessMarkAllNotification = "Tüm bildirimler okundu"

	MessageFailedGetNotifications   = "Bildirimler getirilemedi"
	MessageFailedCreateNotification = "Bildirim oluşturulamadı"
	MessageFailedMarkNotification   = "Bildirim güncellenemedi"

	ErrMissingNotificationFields = fmt.Errorf("%w: user_email and message are required", ErrInvalidInput)
	ErrNotificationRecipient     = fmt.Errorf("%w: recipient or food does not exist", ErrNotFound)
)

type (
	CreateNotificationRequest struct {
		UserEmail string `json:"user_email" form:"user_email" validate:"required"`
		Message   string `json:"message" form:"message" validate:"required"`
		FoodID    string `json:"food_id" form:"food_id" validate:"omitempty,uuid"`
	}

	NotificationResponse struct {
		ID        string    `json:"id"`
		UserEmail string    `json:"user_email"`
		Message   string    `json:"message"`
		FoodID    *string   `json:"food_id,omitempty"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}

	CreatedResponse struct {
		ID string `json:"id"`
	}
)
