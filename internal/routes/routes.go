package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/domain/catalog"
	"github.com/fernweh-travel/fernweh/internal/app/domain/likes"
	"github.com/fernweh-travel/fernweh/internal/app/domain/recommendations"
	"github.com/fernweh-travel/fernweh/internal/app/domain/reviews"
	"github.com/fernweh-travel/fernweh/internal/observability/metrics"
)

type AppHandlers struct {
	Events          *catalog.EventsHandlers
	Likes           *likes.LikesHandlers
	Reviews         *reviews.ReviewsHandlers
	Recommendations *recommendations.RecommendationsHandlers
}

func Setup(r *gin.Engine, dbPool *pgxpool.Pool, log *zap.Logger) {
	handlers, err := setupDependencies(dbPool, log)
	if err != nil {
		log.Fatal("Failed to setup dependencies", zap.Error(err))
	}
	setupRouter(r, handlers, log)
}

func setupDependencies(dbPool *pgxpool.Pool, log *zap.Logger) (*AppHandlers, error) {
	appMetrics := metrics.Get()

	// Create repositories
	catalogRepo := catalog.NewRepository(dbPool, log)
	likesRepo := likes.NewRepository(dbPool, log)
	reviewsRepo := reviews.NewRepository(dbPool, log)

	// Seed the event catalog on first boot so a fresh database has something
	// to recommend.
	if err := seedCatalog(context.Background(), catalogRepo, log); err != nil {
		return nil, err
	}

	// Create services
	likesService := likes.NewServiceImpl(likesRepo, appMetrics, log)
	reviewsService := reviews.NewServiceImpl(reviewsRepo, appMetrics, log)
	recommendationsService := recommendations.NewServiceImpl(
		likesRepo,
		reviewsRepo,
		catalogRepo,
		recommendations.NewScorer(recommendations.DefaultWeights, recommendations.NewRandJitter()),
		appMetrics,
		log,
	)

	handlers := &AppHandlers{
		Events:          catalog.NewEventsHandlers(catalogRepo, log),
		Likes:           likes.NewLikesHandlers(likesService, log),
		Reviews:         reviews.NewReviewsHandlers(reviewsService, log),
		Recommendations: recommendations.NewRecommendationsHandlers(recommendationsService, log),
	}

	return handlers, nil
}

func seedCatalog(ctx context.Context, repo catalog.Repository, log *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Event catalog already populated", zap.Int("events", count))
		return nil
	}

	events := catalog.SampleEvents()
	if err := repo.Seed(ctx, events); err != nil {
		return err
	}
	log.Info("Seeded event catalog", zap.Int("events", len(events)))
	return nil
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/events", h.Events.GetEvents)
		api.GET("/events/:id", h.Events.GetEvent)

		api.GET("/likes", h.Likes.GetLikes)
		api.POST("/likes", h.Likes.CreateLike)
		api.DELETE("/likes", h.Likes.DeleteLike)

		api.GET("/reviews", h.Reviews.GetReviews)
		api.POST("/reviews", h.Reviews.CreateReview)

		api.GET("/recommendations", h.Recommendations.GetRecommendations)
	}

	// 404 handler - must be last
	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not found",
		})
	})
}
