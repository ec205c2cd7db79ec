package feedback

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/utils/mailing"
	"Food-Sharing-Platform/pkg/food"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	FeedbackService interface {
		SubmitMessage(ctx context.Context, req domain.SendMessageRequest) (domain.MessageResponse, error)
		SubmitReview(ctx context.Context, req domain.AddReviewRequest) (domain.ReviewResponse, error)
		ListMessages(ctx context.Context) ([]domain.MessageResponse, error)
		ListReviews(ctx context.Context) ([]domain.ReviewResponse, error)
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
		foodRepository     food.FoodRepository
		mailer             mailing.Mailer
		adminEmail         string
	}
)

func NewFeedbackService(
	feedbackRepository FeedbackRepository,
	foodRepository food.FoodRepository,
	mailer mailing.Mailer,
	adminEmail string,
) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		foodRepository:     foodRepository,
		mailer:             mailer,
		adminEmail:         adminEmail,
	}
}

func (s *feedbackService) SubmitMessage(ctx context.Context, req domain.SendMessageRequest) (domain.MessageResponse, error) {
	for _, field := range []string{req.Name, req.Email, req.Subject, req.Message} {
		if strings.TrimSpace(field) == "" {
			return domain.MessageResponse{}, domain.ErrMissingMessageFields
		}
	}

	message := &entities.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := s.feedbackRepository.CreateMessage(ctx, message); err != nil {
		return domain.MessageResponse{}, err
	}

	s.forward(message)
	return toMessageResponse(message), nil
}

// forward sends a copy of the contact message to the admin inbox when mail is set up.
func (s *feedbackService) forward(message *entities.Message) {
	if s.adminEmail == "" || s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	body := mailing.ContactMessageBody(message.Name, message.Email, message.Subject, message.Body)
	if err := s.mailer.SendMail(s.adminEmail, "İletişim formu: "+message.Subject, body); err != nil {
		log.Warnf("forwarding contact message %s: %v", message.ID, err)
	}
}

func (s *feedbackService) SubmitReview(ctx context.Context, req domain.AddReviewRequest) (domain.ReviewResponse, error) {
	if strings.TrimSpace(req.FoodID) == "" {
		return domain.ReviewResponse{}, domain.ErrMissingReviewFoodID
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}
	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	listing, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}

	review := &entities.Review{
		FoodID:  foodID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.feedbackRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return domain.ReviewResponse{
		ID:        review.ID.String(),
		FoodID:    review.FoodID.String(),
		FoodName:  listing.Name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *feedbackService) ListMessages(ctx context.Context) ([]domain.MessageResponse, error) {
	messages, err := s.feedbackRepository.GetMessages(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageResponse(m))
	}
	return res, nil
}

func (s *feedbackService) ListReviews(ctx context.Context) ([]domain.ReviewResponse, error) {
	reviews, err := s.feedbackRepository.GetReviews(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		res = append(res, domain.ReviewResponse{
			ID:        r.ID.String(),
			FoodID:    r.FoodID.String(),
			FoodName:  r.FoodName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return res, nil
}

func toMessageResponse(m *entities.Message) domain.MessageResponse {
	return domain.MessageResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	}
}
