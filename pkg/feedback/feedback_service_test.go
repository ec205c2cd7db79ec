package feedback

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/testutil"
	"Food-Sharing-Platform/pkg/food"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	enabled bool
	err     error
	to      []string
	bodies  []string
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) SendMail(to, subject, body string) error {
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return m.err
}

func newService(t *testing.T, mailer *fakeMailer, admin string) (*gorm.DB, FeedbackService) {
	db := testutil.NewTestDB(t)
	return db, NewFeedbackService(NewFeedbackRepository(db), food.NewFoodRepository(db), mailer, admin)
}

func contact() domain.SendMessageRequest {
	return domain.SendMessageRequest{Name: "Ayşe", Email: "ayse@x.com", Subject: "Öneri", Message: "<b>Teşekkürler</b>"}
}

func TestSubmitMessage_PersistsAndForwards(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{enabled: true}
	_, svc := newService(t, mailer, "admin@x.com")

	res, err := svc.SubmitMessage(ctx, contact())
	require.NoError(t, err)
	assert.Equal(t, "<b>Teşekkürler</b>", res.Message)

	assert.Equal(t, []string{"admin@x.com"}, mailer.to)
	assert.Contains(t, mailer.bodies[0], "&lt;b&gt;Teşekkürler&lt;/b&gt;")

	list, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Öneri", list[0].Subject)
}

func TestSubmitMessage_MailFailureIgnored(t *testing.T) {
	mailer := &fakeMailer{enabled: true, err: errors.New("smtp down")}
	_, svc := newService(t, mailer, "admin@x.com")

	_, err := svc.SubmitMessage(context.Background(), contact())

	assert.NoError(t, err)
}

func TestSubmitMessage_RequiresAllFields(t *testing.T) {
	mailer := &fakeMailer{enabled: true}
	db, svc := newService(t, mailer, "admin@x.com")
	req := contact()
	req.Subject = ""

	_, err := svc.SubmitMessage(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrMissingMessageFields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var count int64
	require.NoError(t, db.Model(&entities.Message{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, mailer.to)
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	db, svc := newService(t, &fakeMailer{}, "")
	listing := testutil.CreateFood(t, db, "Pide", "2 porsiyon", "Merkez", nil)

	_, err := svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: listing.ID.String(), Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
	_, err = svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: listing.ID.String(), Rating: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SubmitReview(ctx, domain.AddReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrMissingReviewFoodID)
	_, err = svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: uuid.NewString(), Rating: 3})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	res, err := svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: listing.ID.String(), Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "", res.Comment)
	assert.Equal(t, 5, res.Rating)

	var stored entities.Review
	require.NoError(t, db.First(&stored, "id = ?", res.ID).Error)
	assert.Equal(t, "", stored.Comment)
}

func TestListReviews_NewestFirstWithFoodName(t *testing.T) {
	ctx := context.Background()
	db, svc := newService(t, &fakeMailer{}, "")
	pide := testutil.CreateFood(t, db, "Pide", "2 porsiyon", "Merkez", nil)
	salata := testutil.CreateFood(t, db, "Salata", "2 porsiyon", "Merkez", nil)

	_, err := svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: pide.ID.String(), Rating: 4, Comment: "güzel"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.SubmitReview(ctx, domain.AddReviewRequest{FoodID: salata.ID.String(), Rating: 2})
	require.NoError(t, err)

	list, err := svc.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Salata", list[0].FoodName)
	assert.Equal(t, "Pide", list[1].FoodName)
	assert.Equal(t, "güzel", list[1].Comment)
}
