package recommendations

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// Catalog is the slice of the event catalog the recommendation engine needs.
type Catalog interface {
	FindAll(ctx context.Context, countryFilter string) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
}

// Analyzer derives a PreferenceProfile from a user's raw like and review
// records. It has no state beyond its collaborators and no side effects.
type Analyzer struct {
	logger  *zap.Logger
	catalog Catalog
}

func NewAnalyzer(catalog Catalog, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		logger:  logger,
		catalog: catalog,
	}
}

// Analyze resolves each liked event through the catalog and tallies its
// category, country, city and indoor/outdoor attributes. Liked event ids with
// no catalog entry are skipped; a failing catalog lookup is a real upstream
// error and propagates.
func (a *Analyzer) Analyze(ctx context.Context, likes []models.Like, reviews []models.Review) (*models.PreferenceProfile, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "AnalyzePreferences", trace.WithAttributes(
		attribute.Int("likes.count", len(likes)),
		attribute.Int("reviews.count", len(reviews)),
	))
	defer span.End()

	profile := models.NewPreferenceProfile()
	profile.TotalReviews = len(reviews)

	for _, like := range likes {
		event, err := a.catalog.FindByID(ctx, like.EventID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				a.logger.Debug("liked event missing from catalog, skipping",
					zap.String("event_id", like.EventID))
				continue
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "Catalog lookup failed")
			return nil, fmt.Errorf("failed to resolve liked event %s: %w", like.EventID, err)
		}

		profile.Categories[event.Category]++
		profile.Countries[event.Country]++
		profile.Cities[event.City]++
		switch event.IndoorOutdoor {
		case models.Indoor:
			profile.IndoorOutdoor.Indoor++
		case models.Outdoor:
			profile.IndoorOutdoor.Outdoor++
		}
	}

	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		profile.AvgRating = float64(sum) / float64(len(reviews))
	}

	span.SetAttributes(
		attribute.Int("profile.categories", len(profile.Categories)),
		attribute.Float64("profile.avg_rating", profile.AvgRating),
	)
	span.SetStatus(codes.Ok, "Preferences analyzed")
	return profile, nil
}
