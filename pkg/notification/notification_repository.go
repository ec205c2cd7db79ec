package notification

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetUnreadByUser(ctx context.Context, email string) ([]*entities.Notification, error)
		MarkAsRead(ctx context.Context, id string, email string) error
		MarkAllAsRead(ctx context.Context, email string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrNotificationRecipient
		}
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *notificationRepository) GetUnreadByUser(ctx context.Context, email string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_email = ? AND is_read = ?", email, false).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, domain.StoreFailure(err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, email string) error {
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ? AND user_email = ?", id, email).
		Update("is_read", true).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, email string) error {
	if err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_email = ? AND is_read = ?", email, false).
		Update("is_read", true).Error; err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}
