package likes

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
	"github.com/fernweh-travel/fernweh/internal/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for like operations.
type Service interface {
	GetLikesByUser(ctx context.Context, userID string) ([]models.Like, error)
	GetAllLikes(ctx context.Context) ([]models.Like, error)
	IsLiked(ctx context.Context, userID, eventID string) (bool, error)
	LikeEvent(ctx context.Context, userID, eventID string) (*models.Like, error)
	UnlikeEvent(ctx context.Context, userID, eventID string) error
}

type ServiceImpl struct {
	logger  *zap.Logger
	repo    Repository
	metrics *metrics.AppMetrics
}

// NewServiceImpl wires the like workflows. appMetrics may be nil (tests run
// without the meter provider).
func NewServiceImpl(repo Repository, appMetrics *metrics.AppMetrics, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		metrics: appMetrics,
	}
}

func (s *ServiceImpl) GetLikesByUser(ctx context.Context, userID string) ([]models.Like, error) {
	if userID == "" {
		return nil, models.ErrUserIDRequired
	}
	likes, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get likes by user", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return likes, nil
}

func (s *ServiceImpl) GetAllLikes(ctx context.Context) ([]models.Like, error) {
	likes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all likes", zap.Error(err))
		return nil, err
	}
	return likes, nil
}

func (s *ServiceImpl) IsLiked(ctx context.Context, userID, eventID string) (bool, error) {
	if userID == "" {
		return false, models.ErrUserIDRequired
	}
	if eventID == "" {
		return false, models.ErrEventIDRequired
	}
	liked, err := s.repo.Exists(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("failed to check if event is liked", zap.Error(err))
		return false, err
	}
	return liked, nil
}

// LikeEvent is idempotent: a repeat like returns the existing row.
func (s *ServiceImpl) LikeEvent(ctx context.Context, userID, eventID string) (*models.Like, error) {
	if userID == "" {
		return nil, models.ErrUserIDRequired
	}
	if eventID == "" {
		return nil, models.ErrEventIDRequired
	}

	like, err := s.repo.Create(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("failed to like event",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to like event: %w", err)
	}

	if s.metrics != nil {
		s.metrics.LikeWritesTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("operation", "create")))
	}
	s.logger.Info("event liked",
		zap.String("user_id", userID),
		zap.String("event_id", eventID))
	return like, nil
}

func (s *ServiceImpl) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	if userID == "" {
		return models.ErrUserIDRequired
	}
	if eventID == "" {
		return models.ErrEventIDRequired
	}

	deleted, err := s.repo.Delete(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("failed to unlike event",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		return fmt.Errorf("failed to unlike event: %w", err)
	}
	if !deleted {
		return models.ErrNotFound
	}

	if s.metrics != nil {
		s.metrics.LikeWritesTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("operation", "delete")))
	}
	s.logger.Info("event unliked",
		zap.String("user_id", userID),
		zap.String("event_id", eventID))
	return nil
}
