package foodrequest

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/utils/mailing"
	"Food-Sharing-Platform/internal/utils/metrics"
	"Food-Sharing-Platform/pkg/food"
	"Food-Sharing-Platform/pkg/notification"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// FoodRequestService holds both ways of asking for a listing. RequestFood only
	// confirms to the requester; CreateFoodRequest records a request for the owner.
	FoodRequestService interface {
		RequestFood(ctx context.Context, req domain.RequestFoodRequest, requesterEmail string) (domain.CreatedResponse, error)
		CreateFoodRequest(ctx context.Context, req domain.CreateFoodRequestRequest, requesterEmail string) (domain.FoodRequestResponse, error)
		GetFoodRequests(ctx context.Context, email string, kind string) ([]domain.FoodRequestResponse, error)
	}

	foodRequestService struct {
		foodRequestRepository FoodRequestRepository
		foodRepository        food.FoodRepository
		notificationService   notification.NotificationService
		mailer                mailing.Mailer
		appURL                string
	}
)

func NewFoodRequestService(
	foodRequestRepository FoodRequestRepository,
	foodRepository food.FoodRepository,
	notificationService notification.NotificationService,
	mailer mailing.Mailer,
	appURL string,
) FoodRequestService {
	return &foodRequestService{
		foodRequestRepository: foodRequestRepository,
		foodRepository:        foodRepository,
		notificationService:   notificationService,
		mailer:                mailer,
		appURL:                strings.TrimRight(appURL, "/"),
	}
}

func (s *foodRequestService) lookupFood(ctx context.Context, id string) (*entities.Food, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingFoodID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.foodRepository.GetFoodByID(ctx, id)
}

func (s *foodRequestService) RequestFood(ctx context.Context, req domain.RequestFoodRequest, requesterEmail string) (domain.CreatedResponse, error) {
	listing, err := s.lookupFood(ctx, req.ID)
	if err != nil {
		return domain.CreatedResponse{}, err
	}

	message := domain.RequestFoodMessage(listing.Name, listing.Location, listing.Time)
	res, err := s.notificationService.Notify(ctx, requesterEmail, message, &listing.ID)
	if err != nil {
		return domain.CreatedResponse{}, err
	}

	metrics.FoodRequestsTotal.WithLabelValues("acknowledged").Inc()
	log.Infof("food %s requested by %s, notification %s", listing.ID, requesterEmail, res.ID)
	return res, nil
}

// CreateFoodRequest stores a pending request and then tells the owner. The owner
// notification and email are best effort and never fail the request.
func (s *foodRequestService) CreateFoodRequest(ctx context.Context, req domain.CreateFoodRequestRequest, requesterEmail string) (domain.FoodRequestResponse, error) {
	listing, err := s.lookupFood(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return domain.FoodRequestResponse{}, domain.ErrFoodOwnerNotFound
		}
		return domain.FoodRequestResponse{}, err
	}
	if listing.OwnerEmail == nil || *listing.OwnerEmail == "" {
		return domain.FoodRequestResponse{}, domain.ErrFoodOwnerNotFound
	}
	ownerEmail := *listing.OwnerEmail

	request := &entities.FoodRequest{
		FoodID:         listing.ID,
		RequesterEmail: requesterEmail,
		OwnerEmail:     ownerEmail,
		Status:         domain.FoodRequestStatusPending,
	}
	if err := s.foodRequestRepository.CreateFoodRequest(ctx, request); err != nil {
		return domain.FoodRequestResponse{}, err
	}
	metrics.FoodRequestsTotal.WithLabelValues("recorded").Inc()

	if _, err := s.notificationService.Notify(ctx, ownerEmail, domain.OwnerRequestMessage(listing.Name), &listing.ID); err != nil {
		log.Errorf("notifying owner %s of request %s: %v", ownerEmail, request.ID, err)
	}
	s.mailOwner(ownerEmail, listing.Name, requesterEmail)

	return domain.FoodRequestResponse{
		ID:             request.ID.String(),
		FoodID:         listing.ID.String(),
		RequesterEmail: requesterEmail,
		OwnerEmail:     ownerEmail,
		Status:         request.Status,
		FoodName:       listing.Name,
		FoodImage:      listing.Image,
		CreatedAt:      request.CreatedAt,
	}, nil
}

func (s *foodRequestService) mailOwner(ownerEmail, foodName, requesterEmail string) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	body := mailing.FoodRequestBody(s.appURL, foodName, requesterEmail)
	if err := s.mailer.SendMail(ownerEmail, "Yeni yemek talebi: "+foodName, body); err != nil {
		log.Warnf("mailing owner %s: %v", ownerEmail, err)
	}
}

// GetFoodRequests lists requests received as owner, or sent as requester for any other kind.
func (s *foodRequestService) GetFoodRequests(ctx context.Context, email string, kind string) ([]domain.FoodRequestResponse, error) {
	var (
		rows []*entities.FoodRequestWithFood
		err  error
	)
	if kind == "" || kind == domain.FoodRequestsReceived {
		rows, err = s.foodRequestRepository.GetReceivedRequests(ctx, email)
	} else {
		rows, err = s.foodRequestRepository.GetSentRequests(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodRequestResponse, 0, len(rows))
	for _, r := range rows {
		res = append(res, domain.FoodRequestResponse{
			ID:             r.ID.String(),
			FoodID:         r.FoodID.String(),
			RequesterEmail: r.RequesterEmail,
			OwnerEmail:     r.OwnerEmail,
			Status:         r.Status,
			FoodName:       r.FoodName,
			FoodImage:      r.FoodImage,
			CreatedAt:      r.CreatedAt,
		})
	}
	return res, nil
}
