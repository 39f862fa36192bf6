package reviews

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
	"github.com/fernweh-travel/fernweh/internal/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for review operations.
type Service interface {
	GetReviewsByEvent(ctx context.Context, eventID string) ([]models.Review, error)
	GetReviewsByUserName(ctx context.Context, userName string) ([]models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error)
}

type ServiceImpl struct {
	logger  *zap.Logger
	repo    Repository
	metrics *metrics.AppMetrics
}

// NewServiceImpl wires the review workflows. appMetrics may be nil (tests run
// without the meter provider).
func NewServiceImpl(repo Repository, appMetrics *metrics.AppMetrics, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		metrics: appMetrics,
	}
}

func (s *ServiceImpl) GetReviewsByEvent(ctx context.Context, eventID string) ([]models.Review, error) {
	if eventID == "" {
		return nil, models.ErrEventIDRequired
	}
	reviews, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get reviews by event", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (s *ServiceImpl) GetReviewsByUserName(ctx context.Context, userName string) ([]models.Review, error) {
	reviews, err := s.repo.FindByUserName(ctx, userName)
	if err != nil {
		s.logger.Error("failed to get reviews by user", zap.String("user_name", userName), zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (s *ServiceImpl) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (s *ServiceImpl) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	if req.EventID == "" {
		return nil, models.ErrEventIDRequired
	}
	if strings.TrimSpace(req.UserName) == "" {
		return nil, fmt.Errorf("%w: userName is required", models.ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, models.ErrRatingOutOfRange
	}

	review, err := s.repo.Create(ctx, req.EventID, req.Rating, req.Review, req.UserName)
	if err != nil {
		s.logger.Error("failed to create review",
			zap.String("event_id", req.EventID),
			zap.String("user_name", req.UserName),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ReviewWritesTotal.Add(ctx, 1)
	}
	s.logger.Info("review created",
		zap.String("event_id", req.EventID),
		zap.String("user_name", req.UserName),
		zap.Int("rating", req.Rating))
	return review, nil
}
