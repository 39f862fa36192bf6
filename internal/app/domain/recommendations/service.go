package recommendations

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fernweh-travel/fernweh/internal/app/models"
	"github.com/fernweh-travel/fernweh/internal/observability/metrics"
)

// NoLikesMessage is the hint returned to users who have not liked anything
// yet. A zero-likes result is a legitimate business outcome, not an error.
const NoLikesMessage = "No likes found. Start liking events to get personalized recommendations!"

var _ Service = (*ServiceImpl)(nil)

// LikesStore is the slice of the likes store the service needs. Likes come
// back newest-first.
type LikesStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Like, error)
}

// ReviewsStore is the slice of the reviews store the service needs. Reviews
// are keyed by the free-text userName; callers match it against the like
// identity by convention.
type ReviewsStore interface {
	FindByUserName(ctx context.Context, userName string) ([]models.Review, error)
}

// Service computes personalized event recommendations.
type Service interface {
	GetRecommendations(ctx context.Context, userID, country string, limit int) (*models.RecommendationResult, error)
}

type ServiceImpl struct {
	logger   *zap.Logger
	likes    LikesStore
	reviews  ReviewsStore
	catalog  Catalog
	analyzer *Analyzer
	scorer   *Scorer
	metrics  *metrics.AppMetrics
}

// NewServiceImpl wires the recommendation pipeline. appMetrics may be nil
// (tests run without the meter provider).
func NewServiceImpl(likes LikesStore, reviews ReviewsStore, cat Catalog, scorer *Scorer, appMetrics *metrics.AppMetrics, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		likes:    likes,
		reviews:  reviews,
		catalog:  cat,
		analyzer: NewAnalyzer(cat, logger),
		scorer:   scorer,
		metrics:  appMetrics,
	}
}

// GetRecommendations orchestrates the pipeline: load likes, short-circuit on
// an empty history, load reviews and candidates concurrently, analyze, score.
// Upstream failures propagate; they are never flattened into an empty result.
func (s *ServiceImpl) GetRecommendations(ctx context.Context, userID, country string, limit int) (*models.RecommendationResult, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GetRecommendations", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("country", country),
		attribute.Int("limit", limit),
	))
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		span.SetStatus(codes.Error, "Missing userId")
		return nil, models.ErrUserIDRequired
	}

	if s.metrics != nil {
		s.metrics.RecommendationRequestsTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.Bool("country_filtered", country != "")))
	}

	userLikes, err := s.likes.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load likes", zap.String("user_id", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Likes store failed")
		return nil, fmt.Errorf("failed to load likes for user %s: %w", userID, err)
	}

	if len(userLikes) == 0 {
		span.AddEvent("no likes, short-circuiting")
		span.SetStatus(codes.Ok, "No likes yet")
		return &models.RecommendationResult{
			Recommendations: []models.Event{},
			Message:         NoLikesMessage,
		}, nil
	}

	// Reviews and catalog reads are independent, so overlap them. The
	// catalog gets the country filter as a first-pass narrowing; the scorer
	// re-applies it in case the catalog ignored the hint.
	var (
		userReviews []models.Review
		candidates  []models.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userReviews, err = s.reviews.FindByUserName(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load reviews for user %s: %w", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		candidates, err = s.catalog.FindAll(gctx, country)
		if err != nil {
			return fmt.Errorf("failed to load event catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load recommendation inputs", zap.String("user_id", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Upstream load failed")
		return nil, err
	}

	likedEventIDs := make(map[string]struct{}, len(userLikes))
	for _, like := range userLikes {
		likedEventIDs[like.EventID] = struct{}{}
	}

	// The country narrowing may have emptied the pool, or left only events
	// the user already liked; the scorer's fallback needs the full catalog
	// to fall back to.
	if country != "" && !hasUnlikedCandidate(candidates, likedEventIDs) {
		candidates, err = s.catalog.FindAll(ctx, "")
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to load event catalog: %w", err)
		}
	}

	profile, err := s.analyzer.Analyze(ctx, userLikes, userReviews)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Preference analysis failed")
		return nil, err
	}

	recommended := s.scorer.Score(candidates, profile, likedEventIDs, country, limit)

	s.logger.Info("recommendations computed",
		zap.String("user_id", userID),
		zap.String("country", country),
		zap.Int("total_likes", len(userLikes)),
		zap.Int("candidates", len(candidates)),
		zap.Int("recommended", len(recommended)))
	span.SetAttributes(
		attribute.Int("recommendations.count", len(recommended)),
		attribute.Int("likes.total", len(userLikes)),
	)
	span.SetStatus(codes.Ok, "Recommendations computed")

	return &models.RecommendationResult{
		Recommendations: recommended,
		Preferences:     profile,
		TotalLikes:      len(userLikes),
	}, nil
}

func hasUnlikedCandidate(candidates []models.Event, likedEventIDs map[string]struct{}) bool {
	for _, event := range candidates {
		if _, liked := likedEventIDs[event.ID]; !liked {
			return true
		}
	}
	return false
}
