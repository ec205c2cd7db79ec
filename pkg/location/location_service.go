package location

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"context"
	"strings"

	"github.com/google/uuid"
)

type (
	LocationService interface {
		GetLocations(ctx context.Context, email string) ([]domain.LocationResponse, error)
		CreateLocation(ctx context.Context, req domain.CreateLocationRequest, email string) (domain.LocationResponse, error)
		DeleteLocation(ctx context.Context, id string, email string) error
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) GetLocations(ctx context.Context, email string) ([]domain.LocationResponse, error) {
	locations, err := s.locationRepository.GetLocationsByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	res := make([]domain.LocationResponse, 0, len(locations))
	for _, l := range locations {
		res = append(res, ToLocationResponse(l))
	}
	return res, nil
}

func (s *locationService) CreateLocation(ctx context.Context, req domain.CreateLocationRequest, email string) (domain.LocationResponse, error) {
	if strings.TrimSpace(req.Region) == "" || strings.TrimSpace(req.District) == "" {
		return domain.LocationResponse{}, domain.ErrMissingRegion
	}

	location := &entities.SavedLocation{
		UserEmail:    email,
		Title:        req.Title,
		Region:       req.Region,
		District:     req.District,
		Neighborhood: req.Neighborhood,
		Street:       req.Street,
	}
	if err := s.locationRepository.CreateLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	return ToLocationResponse(location), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id string, email string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrLocationNotFound
	}

	affected, err := s.locationRepository.DeleteLocation(ctx, id, email)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func ToLocationResponse(l *entities.SavedLocation) domain.LocationResponse {
	return domain.LocationResponse{
		ID:           l.ID.String(),
		Title:        l.Title,
		Region:       l.Region,
		District:     l.District,
		Neighborhood: l.Neighborhood,
		Street:       l.Street,
		CreatedAt:    l.CreatedAt,
	}
}
