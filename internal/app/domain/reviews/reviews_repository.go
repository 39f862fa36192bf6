package reviews

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository is the Reviews Store. Reviews are append-only: each create adds
// a new row, multiple reviews per (user, event) are allowed, and there is no
// edit or delete.
type Repository interface {
	FindByEvent(ctx context.Context, eventID string) ([]models.Review, error)
	FindByUserName(ctx context.Context, userName string) ([]models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, eventID string, rating int, text, userName string) (*models.Review, error)
}

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type RepositoryImpl struct {
	logger *zap.Logger
	db     Querier
}

func NewRepository(db Querier, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     db,
	}
}

const reviewColumns = "id, event_id, user_name, rating, review, created_at, updated_at"

func (r *RepositoryImpl) FindByEvent(ctx context.Context, eventID string) ([]models.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepository").Start(ctx, "FindByEvent", trace.WithAttributes(
		attribute.String("event.id", eventID),
	))
	defer span.End()

	rows, err := r.db.Query(ctx, `
        SELECT `+reviewColumns+`
        FROM reviews
        WHERE event_id = $1
        ORDER BY created_at DESC
    `, eventID)
	if err != nil {
		r.logger.Error("failed to query reviews by event", zap.String("event_id", eventID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews for event %s: %w", eventID, err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("reviews.count", len(reviews)))
	span.SetStatus(codes.Ok, "Reviews retrieved")
	return reviews, nil
}

func (r *RepositoryImpl) FindByUserName(ctx context.Context, userName string) ([]models.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepository").Start(ctx, "FindByUserName", trace.WithAttributes(
		attribute.String("user.name", userName),
	))
	defer span.End()

	rows, err := r.db.Query(ctx, `
        SELECT `+reviewColumns+`
        FROM reviews
        WHERE user_name = $1
        ORDER BY created_at DESC
    `, userName)
	if err != nil {
		r.logger.Error("failed to query reviews by user", zap.String("user_name", userName), zap.Error(err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query reviews for user %s: %w", userName, err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("reviews.count", len(reviews)))
	return reviews, nil
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]models.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepository").Start(ctx, "FindAll")
	defer span.End()

	rows, err := r.db.Query(ctx, `
        SELECT `+reviewColumns+`
        FROM reviews
        ORDER BY created_at DESC
    `)
	if err != nil {
		r.logger.Error("failed to query all reviews", zap.Error(err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("reviews.count", len(reviews)))
	return reviews, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, eventID string, rating int, text, userName string) (*models.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepository").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("event.id", eventID),
		attribute.Int("rating", rating),
	))
	defer span.End()

	var review models.Review
	err := r.db.QueryRow(ctx, `
        INSERT INTO reviews (event_id, user_name, rating, review)
        VALUES ($1, $2, $3, $4)
        RETURNING `+reviewColumns+`
    `, eventID, userName, rating, text).Scan(
		&review.ID, &review.EventID, &review.UserName, &review.Rating,
		&review.Review, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create review",
			zap.String("event_id", eventID),
			zap.String("user_name", userName),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	span.SetStatus(codes.Ok, "Review created")
	return &review, nil
}

func scanReviews(rows pgx.Rows) ([]models.Review, error) {
	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.EventID, &rv.UserName, &rv.Rating,
			&rv.Review, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review rows: %w", err)
	}
	return reviews, nil
}
