package feedback

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateMessage(ctx context.Context, message *entities.Message) error
		GetMessages(ctx context.Context) ([]*entities.Message, error)
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviews(ctx context.Context) ([]*entities.ReviewWithFood, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *feedbackRepository) GetMessages(ctx context.Context) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return messages, nil
}

func (r *feedbackRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *feedbackRepository) GetReviews(ctx context.Context) ([]*entities.ReviewWithFood, error) {
	var reviews []*entities.ReviewWithFood
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Select("reviews.*, foods.name AS food_name").
		Joins("JOIN foods ON foods.id = reviews.food_id").
		Order("reviews.created_at desc").
		Scan(&reviews).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return reviews, nil
}
