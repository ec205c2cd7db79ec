package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/pkg/foodrequest"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodRequestHandler interface {
		RequestFood(c *fiber.Ctx) error
		CreateFoodRequest(c *fiber.Ctx) error
		GetFoodRequests(c *fiber.Ctx) error
	}

	foodRequestHandler struct {
		foodRequestService foodrequest.FoodRequestService
		validator          *validator.Validate
	}
)

func NewFoodRequestHandler(foodRequestService foodrequest.FoodRequestService, validator *validator.Validate) FoodRequestHandler {
	return &foodRequestHandler{
		foodRequestService: foodRequestService,
		validator:          validator,
	}
}

func (h *foodRequestHandler) RequestFood(c *fiber.Ctx) error {
	req := new(domain.RequestFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestFood, err)
	}

	res, err := h.foodRequestService.RequestFood(c.Context(), *req, sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedRequestFood, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRequestFood)
	}
	return c.Redirect("/yemek_verenler")
}

func (h *foodRequestHandler) CreateFoodRequest(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodRequest, err)
	}

	res, err := h.foodRequestService.CreateFoodRequest(c.Context(), *req, sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateFoodRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodRequest)
}

func (h *foodRequestHandler) GetFoodRequests(c *fiber.Ctx) error {
	kind := c.Query("type", domain.FoodRequestsReceived)

	res, err := h.foodRequestService.GetFoodRequests(c.Context(), sessionEmail(c), kind)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetFoodRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodRequests)
}
