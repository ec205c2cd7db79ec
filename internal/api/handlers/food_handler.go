package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodHandler interface {
		ListFoods(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		DeleteFoodByID(c *fiber.Ctx) error
		TakeFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) ListFoods(c *fiber.Ctx) error {
	filter := new(domain.FoodFilter)

	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	foods, err := h.foodService.ListFoods(c.Context(), *filter)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	res, err := h.foodService.GetGiverDashboard(c.Context(), sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return h.addFoodFailure(c, invalid(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return h.addFoodFailure(c, invalid(err))
	}

	res, err := h.foodService.CreateFood(c.Context(), *req, sessionEmail(c))
	if err != nil {
		return h.addFoodFailure(c, err)
	}

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
	}
	return c.Redirect("/yemek_verenler")
}

func (h *foodHandler) addFoodFailure(c *fiber.Ctx, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.FailureResponse(c, domain.MessageFailedAddFood, err)
	}
	return replyText(c, err, domain.MessageFailedAddFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	req := &domain.UploadFoodImageRequest{FoodID: c.Params("id")}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), *req, sessionEmail(c))
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

// DeleteFood serves the listing form, which posts the id as "id" or "index".
func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	req := new(domain.FoodIDRequest)

	if err := c.BodyParser(req); err != nil {
		return h.deleteFailure(c, invalid(err))
	}

	if err := h.foodService.DeleteFood(c.Context(), req.Value()); err != nil {
		return h.deleteFailure(c, err)
	}
	logActor(c, "deleted food", req.Value())

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
	}
	return c.Redirect("/yemek_verenler")
}

func (h *foodHandler) DeleteFoodByID(c *fiber.Ctx) error {
	if err := h.foodService.DeleteFood(c.Context(), c.Params("id")); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) deleteFailure(c *fiber.Ctx, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteFood, err)
	}
	return replyText(c, err, domain.MessageFailedDeleteFood)
}

func (h *foodHandler) TakeFood(c *fiber.Ctx) error {
	req := new(domain.FoodIDRequest)

	if err := c.BodyParser(req); err != nil {
		return h.takeFailure(c, invalid(err))
	}

	res, err := h.foodService.FulfillPortion(c.Context(), req.Value())
	if err != nil {
		return h.takeFailure(c, err)
	}
	logActor(c, "took a portion of food", res.ID)

	if presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Message)
	}
	return c.Redirect("/yemek_listesi")
}

// logActor records who acted on a listing through the unauthenticated form endpoints.
func logActor(c *fiber.Ctx, action, foodID string) {
	if email := sessionEmail(c); email != "" {
		log.Infof("%s %s %s", email, action, foodID)
	}
}

func (h *foodHandler) takeFailure(c *fiber.Ctx, err error) error {
	if presenters.WantsJSON(c) {
		return presenters.FailureResponse(c, domain.MessageFailedTakeFood, err)
	}
	return replyText(c, err, domain.MessageFoodNotFound)
}
