package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/pkg/location"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		GetLocations(c *fiber.Ctx) error
		CreateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	res, err := h.locationService.GetLocations(c.Context(), sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) CreateLocation(c *fiber.Ctx) error {
	req := new(domain.CreateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, domain.ErrMissingRegion)
	}

	res, err := h.locationService.CreateLocation(c.Context(), *req, sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.locationService.DeleteLocation(c.Context(), c.Params("id"), sessionEmail(c)); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}
