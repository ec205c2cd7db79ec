package handlers

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/api/presenters"
	"Food-Sharing-Platform/pkg/feedback"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeedbackHandler interface {
		SendMessage(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
		ListMessages(c *fiber.Ctx) error
		ListReviews(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

// respond sends JSON to programmatic callers and the plain message to forms.
func (h *feedbackHandler) respond(c *fiber.Ctx, data any, message string, failed string, err error) error {
	if presenters.WantsJSON(c) {
		if err != nil {
			return presenters.FailureResponse(c, failed, err)
		}
		return presenters.SuccessResponse(c, data, fiber.StatusCreated, message)
	}
	if err != nil {
		return replyText(c, err, failed)
	}
	return presenters.TextResponse(c, fiber.StatusOK, message)
}

func (h *feedbackHandler) SendMessage(c *fiber.Ctx) error {
	req := new(domain.SendMessageRequest)

	if err := c.BodyParser(req); err != nil {
		return h.respond(c, nil, "", domain.MessageFailedSendMessage, invalid(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return h.respond(c, nil, "", domain.MessageFailedSendMessage, invalid(err))
	}

	res, err := h.feedbackService.SubmitMessage(c.Context(), *req)
	return h.respond(c, res, domain.MessageSuccessSendMessage, domain.MessageFailedSendMessage, err)
}

func (h *feedbackHandler) AddReview(c *fiber.Ctx) error {
	req := new(domain.AddReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return h.respond(c, nil, "", domain.MessageFailedAddReview, invalid(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return h.respond(c, nil, "", domain.MessageFailedAddReview, invalid(err))
	}

	res, err := h.feedbackService.SubmitReview(c.Context(), *req)
	return h.respond(c, res, domain.MessageSuccessAddReview, domain.MessageFailedAddReview, err)
}

func (h *feedbackHandler) ListMessages(c *fiber.Ctx) error {
	res, err := h.feedbackService.ListMessages(c.Context())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *feedbackHandler) ListReviews(c *fiber.Ctx) error {
	res, err := h.feedbackService.ListReviews(c.Context())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}
