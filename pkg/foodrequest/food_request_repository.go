package foodrequest

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRequestRepository interface {
		CreateFoodRequest(ctx context.Context, request *entities.FoodRequest) error
		GetReceivedRequests(ctx context.Context, ownerEmail string) ([]*entities.FoodRequestWithFood, error)
		GetSentRequests(ctx context.Context, requesterEmail string) ([]*entities.FoodRequestWithFood, error)
	}

	foodRequestRepository struct {
		db *gorm.DB
	}
)

func NewFoodRequestRepository(db *gorm.DB) FoodRequestRepository {
	return &foodRequestRepository{db: db}
}

func (r *foodRequestRepository) CreateFoodRequest(ctx context.Context, request *entities.FoodRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *foodRequestRepository) GetReceivedRequests(ctx context.Context, ownerEmail string) ([]*entities.FoodRequestWithFood, error) {
	return r.joined(ctx, "food_requests.owner_email = ?", ownerEmail)
}

func (r *foodRequestRepository) GetSentRequests(ctx context.Context, requesterEmail string) ([]*entities.FoodRequestWithFood, error) {
	return r.joined(ctx, "food_requests.requester_email = ?", requesterEmail)
}

func (r *foodRequestRepository) joined(ctx context.Context, where string, email string) ([]*entities.FoodRequestWithFood, error) {
	var rows []*entities.FoodRequestWithFood
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodRequest{}).
		Select("food_requests.*, foods.name AS food_name, foods.image AS food_image").
		Joins("JOIN foods ON foods.id = food_requests.food_id").
		Where(where, email).
		Order("food_requests.created_at desc").
		Scan(&rows).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return rows, nil
}
