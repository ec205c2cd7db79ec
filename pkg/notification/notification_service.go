package notification

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/utils/metrics"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	NotificationService interface {
		Create(ctx context.Context, req domain.CreateNotificationRequest) (domain.CreatedResponse, error)
		Notify(ctx context.Context, email string, message string, foodID *uuid.UUID) (domain.CreatedResponse, error)
		GetUnread(ctx context.Context, email string) ([]domain.NotificationResponse, error)
		MarkAsRead(ctx context.Context, id string, email string) error
		MarkAllAsRead(ctx context.Context, email string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) Create(ctx context.Context, req domain.CreateNotificationRequest) (domain.CreatedResponse, error) {
	if strings.TrimSpace(req.UserEmail) == "" || strings.TrimSpace(req.Message) == "" {
		return domain.CreatedResponse{}, domain.ErrMissingNotificationFields
	}

	var foodID *uuid.UUID
	if req.FoodID != "" {
		id, err := uuid.Parse(req.FoodID)
		if err != nil {
			return domain.CreatedResponse{}, domain.ErrParseUUID
		}
		foodID = &id
	}

	return s.Notify(ctx, req.UserEmail, req.Message, foodID)
}

// Notify stores an unread notification for email.
func (s *notificationService) Notify(ctx context.Context, email string, message string, foodID *uuid.UUID) (domain.CreatedResponse, error) {
	notification := &entities.Notification{
		UserEmail: email,
		Message:   message,
		FoodID:    foodID,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return domain.CreatedResponse{}, err
	}

	metrics.NotificationsCreatedTotal.Inc()
	log.Debugf("notification %s created for %s", notification.ID, email)
	return domain.CreatedResponse{ID: notification.ID.String()}, nil
}

func (s *notificationService) GetUnread(ctx context.Context, email string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetUnreadByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	res := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := domain.NotificationResponse{
			ID:        n.ID.String(),
			UserEmail: n.UserEmail,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.FoodID != nil {
			id := n.FoodID.String()
			item.FoodID = &id
		}
		res = append(res, item)
	}
	return res, nil
}

// MarkAsRead is scoped to email; an id that matches nothing is still a success.
func (s *notificationService) MarkAsRead(ctx context.Context, id string, email string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	return s.notificationRepository.MarkAsRead(ctx, id, email)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, email string) error {
	return s.notificationRepository.MarkAllAsRead(ctx, email)
}
