package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

type mockRepository struct{ mock.Mock }

func (m *mockRepository) FindByEvent(ctx context.Context, eventID string) ([]models.Review, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockRepository) FindByUserName(ctx context.Context, userName string) ([]models.Review, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, eventID string, rating int, review, userName string) (*models.Review, error) {
	args := m.Called(ctx, eventID, rating, review, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func TestCreateReviewValidation(t *testing.T) {
	repo := new(mockRepository)
	svc := NewServiceImpl(repo, nil, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreateReviewRequest
		want error
	}{
		{"missing event", models.CreateReviewRequest{UserName: "u1", Rating: 4}, models.ErrEventIDRequired},
		{"blank user name", models.CreateReviewRequest{EventID: "rec_jp_001", UserName: "   ", Rating: 4}, models.ErrValidation},
		{"rating too low", models.CreateReviewRequest{EventID: "rec_jp_001", UserName: "u1", Rating: 0}, models.ErrRatingOutOfRange},
		{"rating too high", models.CreateReviewRequest{EventID: "rec_jp_001", UserName: "u1", Rating: 6}, models.ErrRatingOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateReview(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReviewDelegatesToRepo(t *testing.T) {
	repo := new(mockRepository)
	svc := NewServiceImpl(repo, nil, zap.NewNop())

	want := &models.Review{EventID: "rec_jp_001", UserName: "u1", Rating: 5, Review: "Unforgettable"}
	repo.On("Create", mock.Anything, "rec_jp_001", 5, "Unforgettable", "u1").Return(want, nil)

	got, err := svc.CreateReview(context.Background(), models.CreateReviewRequest{
		EventID:  "rec_jp_001",
		Rating:   5,
		Review:   "Unforgettable",
		UserName: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetReviewsByEventRequiresEventID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewServiceImpl(repo, nil, zap.NewNop())

	_, err := svc.GetReviewsByEvent(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrEventIDRequired)
	repo.AssertNotCalled(t, "FindByEvent", mock.Anything, mock.Anything)
}

func TestGetReviewsByEvent(t *testing.T) {
	repo := new(mockRepository)
	svc := NewServiceImpl(repo, nil, zap.NewNop())

	want := []models.Review{{EventID: "rec_jp_001", UserName: "u1", Rating: 5}}
	repo.On("FindByEvent", mock.Anything, "rec_jp_001").Return(want, nil)

	got, err := svc.GetReviewsByEvent(context.Background(), "rec_jp_001")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
