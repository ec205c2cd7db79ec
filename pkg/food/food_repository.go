package food

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoods(ctx context.Context, location string, id string) ([]*entities.Food, error)
		GetFoodsByOwner(ctx context.Context, email string) ([]*entities.Food, error)
		UpdateQuantity(ctx context.Context, id string, quantity string) error
		MarkAsTaken(ctx context.Context, id string) error
		UpdateImage(ctx context.Context, id string, image string) error
		DeleteFood(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	if err := r.db.WithContext(ctx).Create(food).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, domain.StoreFailure(err)
	}
	return &food, nil
}

// GetFoods filters by a location substring and an exact id; empty values do not filter.
func (r *foodRepository) GetFoods(ctx context.Context, location string, id string) ([]*entities.Food, error) {
	var foods []*entities.Food

	query := r.db.WithContext(ctx)
	if location != "" {
		query = query.Where("lokasyon LIKE ?", "%"+location+"%")
	}
	if id != "" {
		query = query.Where("id = ?", id)
	}

	if err := query.Order("created_at asc").Find(&foods).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return foods, nil
}

// GetFoodsByOwner includes rows without an owner, which predate ownership tracking.
func (r *foodRepository) GetFoodsByOwner(ctx context.Context, email string) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("owner_email = ? OR owner_email IS NULL", email).
		Order("created_at desc").
		Find(&foods).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return foods, nil
}

func (r *foodRepository) UpdateQuantity(ctx context.Context, id string, quantity string) error {
	return r.update(ctx, id, "miktar", quantity)
}

func (r *foodRepository) MarkAsTaken(ctx context.Context, id string) error {
	return r.update(ctx, id, "status", domain.FoodStatusTaken)
}

func (r *foodRepository) UpdateImage(ctx context.Context, id string, image string) error {
	return r.update(ctx, id, "image", image)
}

func (r *foodRepository) update(ctx context.Context, id string, column string, value any) error {
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", id).
		Update(column, value).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}
