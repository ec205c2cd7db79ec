package food

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/utils/imagesearch"
	"Food-Sharing-Platform/internal/utils/metrics"
	"Food-Sharing-Platform/internal/utils/storage"
	"Food-Sharing-Platform/pkg/location"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const foodImageFolder = "food-images"

type (
	FoodService interface {
		ListFoods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodResponse, error)
		GetGiverDashboard(ctx context.Context, email string) (domain.GiverDashboardResponse, error)
		CreateFood(ctx context.Context, req domain.AddFoodRequest, ownerEmail string) (domain.FoodResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, ownerEmail string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string) error
		FulfillPortion(ctx context.Context, id string) (domain.FulfillPortionResponse, error)
	}

	foodService struct {
		foodRepository     FoodRepository
		locationRepository location.LocationRepository
		s3                 storage.AwsS3
		images             *imageResolver
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	locationRepository location.LocationRepository,
	s3 storage.AwsS3,
	searcher imagesearch.ImageSearcher,
	imagesDir string,
) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		locationRepository: locationRepository,
		s3:                 s3,
		images: &imageResolver{
			dir:      imagesDir,
			searcher: searcher,
			fallback: domain.DefaultFoodImage,
		},
	}
}

func (s *foodService) ListFoods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodResponse, error) {
	if filter.FoodID != "" {
		if _, err := uuid.Parse(filter.FoodID); err != nil {
			return nil, domain.ErrParseUUID
		}
	}

	var (
		foods []*entities.Food
		err   error
	)
	if filter.SameLocation && filter.FoodID != "" {
		foods, err = s.foodsNear(ctx, filter.FoodID)
	} else {
		foods, err = s.foodRepository.GetFoods(ctx, strings.TrimSpace(filter.Location), filter.FoodID)
	}
	if err != nil {
		return nil, err
	}

	return s.toResponses(foods), nil
}

// foodsNear lists every listing sharing the location of the given one.
func (s *foodService) foodsNear(ctx context.Context, id string) ([]*entities.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			return []*entities.Food{}, nil
		}
		return nil, err
	}

	if food.Location == "" {
		return []*entities.Food{food}, nil
	}
	return s.foodRepository.GetFoods(ctx, food.Location, "")
}

func (s *foodService) GetGiverDashboard(ctx context.Context, email string) (domain.GiverDashboardResponse, error) {
	foods, err := s.foodRepository.GetFoodsByOwner(ctx, email)
	if err != nil {
		return domain.GiverDashboardResponse{}, err
	}

	res := domain.GiverDashboardResponse{
		Foods:          s.toResponses(foods),
		SavedLocations: []domain.LocationResponse{},
	}

	locations, err := s.locationRepository.GetLocationsByUser(ctx, email)
	if err != nil {
		log.Errorf("loading saved locations of %s: %v", email, err)
		return res, nil
	}
	for _, l := range locations {
		res.SavedLocations = append(res.SavedLocations, location.ToLocationResponse(l))
	}
	return res, nil
}

func (s *foodService) CreateFood(ctx context.Context, req domain.AddFoodRequest, ownerEmail string) (domain.FoodResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Quantity) == "" || strings.TrimSpace(req.Time) == "" ||
		strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Location) == "" {
		return domain.FoodResponse{}, domain.ErrMissingFoodFields
	}

	food := &entities.Food{
		Name:        req.Name,
		EnglishName: translateToEnglish(name),
		Image:       s.images.resolve(name, req.Image),
		Description: req.Description,
		Quantity:    req.Quantity,
		Time:        req.Time,
		Location:    req.Location,
		Status:      domain.FoodStatusReady,
	}
	if ownerEmail != "" {
		food.OwnerEmail = &ownerEmail
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	metrics.FoodsCreatedTotal.Inc()
	return ToFoodResponse(food), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, ownerEmail string) (domain.FoodResponse, error) {
	if !s.s3.Enabled() {
		return domain.FoodResponse{}, domain.ErrStorageUnavailable
	}
	if _, err := uuid.Parse(req.FoodID); err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	if food.OwnerEmail == nil || *food.OwnerEmail != ownerEmail {
		return domain.FoodResponse{}, domain.ErrFoodAccessDenied
	}

	objectKey, err := s.s3.UploadFile(ctx, food.ID.String(), req.Image, foodImageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.FoodResponse{}, errors.Join(domain.ErrInvalidInput, err)
		}
		return domain.FoodResponse{}, err
	}

	if oldKey := s.s3.GetObjectKeyFromLink(food.Image); oldKey != "" && oldKey != objectKey {
		if err := s.s3.DeleteFile(ctx, oldKey); err != nil {
			log.Warnf("removing replaced image %s: %v", oldKey, err)
		}
	}

	food.Image = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateImage(ctx, req.FoodID, food.Image); err != nil {
		return domain.FoodResponse{}, err
	}

	return ToFoodResponse(food), nil
}

// DeleteFood removes the listing whoever asks. An id that matches nothing is not an error.
func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrFoodNotFound) {
		return err
	}

	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		return err
	}

	if food != nil {
		if objectKey := s.s3.GetObjectKeyFromLink(food.Image); objectKey != "" {
			if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
				log.Warnf("removing image %s of deleted food %s: %v", objectKey, id, err)
			}
		}
	}
	return nil
}

// FulfillPortion takes one portion. A listing with more than one portion left is
// decremented, anything else is closed with its quantity untouched.
func (s *foodService) FulfillPortion(ctx context.Context, id string) (domain.FulfillPortionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FulfillPortionResponse{}, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		return domain.FulfillPortionResponse{}, err
	}

	if n, ok := parseLeadingInt(food.Quantity); ok && n > 1 {
		food.Quantity = portionText(n - 1)
		if err := s.foodRepository.UpdateQuantity(ctx, id, food.Quantity); err != nil {
			return domain.FulfillPortionResponse{}, err
		}
		metrics.PortionsFulfilledTotal.WithLabelValues("decremented").Inc()
		return fulfillResponse(food, domain.MessageSuccessPortionTaken), nil
	}

	if err := s.foodRepository.MarkAsTaken(ctx, id); err != nil {
		return domain.FulfillPortionResponse{}, err
	}
	food.Status = domain.FoodStatusTaken
	metrics.PortionsFulfilledTotal.WithLabelValues("closed").Inc()
	return fulfillResponse(food, domain.MessageSuccessFoodTaken), nil
}

func fulfillResponse(food *entities.Food, message string) domain.FulfillPortionResponse {
	return domain.FulfillPortionResponse{
		ID:       food.ID.String(),
		Quantity: food.Quantity,
		Status:   food.Status,
		Message:  message,
	}
}

func (s *foodService) toResponses(foods []*entities.Food) []domain.FoodResponse {
	res := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		item := ToFoodResponse(f)
		if image, ok := s.images.display(f.Name); ok {
			item.Image = image
		}
		res = append(res, item)
	}
	return res
}

func ToFoodResponse(f *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		EnglishName: f.EnglishName,
		Image:       f.Image,
		Description: f.Description,
		Quantity:    f.Quantity,
		Time:        f.Time,
		Location:    f.Location,
		Status:      f.Status,
		OwnerEmail:  f.OwnerEmail,
		CreatedAt:   f.CreatedAt,
	}
}
