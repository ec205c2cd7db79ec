package location

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		CreateLocation(ctx context.Context, location *entities.SavedLocation) error
		GetLocationsByUser(ctx context.Context, email string) ([]*entities.SavedLocation, error)
		DeleteLocation(ctx context.Context, id string, email string) (int64, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(ctx context.Context, location *entities.SavedLocation) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *locationRepository) GetLocationsByUser(ctx context.Context, email string) ([]*entities.SavedLocation, error) {
	var locations []*entities.SavedLocation
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&locations).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return locations, nil
}

// DeleteLocation removes the location only when it belongs to email and reports how
// many rows went away.
func (r *locationRepository) DeleteLocation(ctx context.Context, id string, email string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, email).
		Delete(&entities.SavedLocation{})
	if res.Error != nil {
		return 0, domain.StoreFailure(res.Error)
	}
	return res.RowsAffected, nil
}
