package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessSendMessage = "Mesajınız başarıyla gönderildi!"
	MessageSuccessAddReview   = "Yorumunuz başarıyla eklendi!"
	MessageSuccessGetMessages = "messages retrieved successfully"
	MessageSuccessGetReviews  = "reviews retrieved successfully"

	MessageFailedSendMessage = "failed to send message"
	MessageFailedAddReview   = "failed to add review"
	MessageFailedGetMessages = "failed to retrieve messages"
	MessageFailedGetReviews  = "failed to retrieve reviews"

	ErrMissingMessageFields = fmt.Errorf("%w: name, email, subject and message are required", ErrInvalidInput)
	ErrInvalidRating        = fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	ErrMissingReviewFoodID  = fmt.Errorf("%w: food_id is required", ErrInvalidInput)
)

const (
	MinRating = 1
	MaxRating = 5
)

type (
	SendMessageRequest struct {
		Name    string `json:"name" form:"name" validate:"required"`
		Email   string `json:"email" form:"email" validate:"required"`
		Subject string `json:"subject" form:"subject" validate:"required"`
		Message string `json:"message" form:"message" validate:"required"`
	}

	AddReviewRequest struct {
		FoodID  string `json:"food_id" form:"food_id" validate:"required"`
		Rating  int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment" form:"comment"`
	}

	MessageResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Subject   string    `json:"subject"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		FoodID    string    `json:"food_id"`
		FoodName  string    `json:"food_name,omitempty"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"created_at"`
	}
)
