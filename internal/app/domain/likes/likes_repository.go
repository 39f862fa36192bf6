package likes

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

// Repository is the Likes Store. Creation is idempotent: liking an already
// liked event returns the existing row instead of erroring, so the
// (userID, eventID) uniqueness invariant holds under concurrent requests.
type Repository interface {
	FindByUser(ctx context.Context, userID string) ([]models.Like, error)
	FindAll(ctx context.Context) ([]models.Like, error)
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	Create(ctx context.Context, userID, eventID string) (*models.Like, error)
	// Delete reports false when no like existed.
	Delete(ctx context.Context, userID, eventID string) (bool, error)
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

func (r *RepositoryImpl) FindByUser(ctx context.Context, userID string) ([]models.Like, error) {
	ctx, span := otel.Tracer("LikesRepository").Start(ctx, "FindByUser", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, event_id, created_at
        FROM likes
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		r.logger.Error("failed to query likes by user", zap.String("user_id", userID), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to query likes")
		return nil, fmt.Errorf("failed to query likes for user %s: %w", userID, err)
	}
	defer rows.Close()

	likes, err := scanLikes(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("likes.count", len(likes)))
	span.SetStatus(codes.Ok, "Likes retrieved")
	return likes, nil
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]models.Like, error) {
	ctx, span := otel.Tracer("LikesRepository").Start(ctx, "FindAll")
	defer span.End()

	rows, err := r.db.Query(ctx, `
        SELECT id, user_id, event_id, created_at
        FROM likes
        ORDER BY created_at DESC
    `)
	if err != nil {
		r.logger.Error("failed to query all likes", zap.Error(err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer rows.Close()

	likes, err := scanLikes(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("likes.count", len(likes)))
	return likes, nil
}

func (r *RepositoryImpl) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	ctx, span := otel.Tracer("LikesRepository").Start(ctx, "Exists", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("event.id", eventID),
	))
	defer span.End()

	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND event_id = $2)
    `, userID, eventID).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check like existence", zap.Error(err))
		span.RecordError(err)
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}

// Create inserts the like or, when the (user_id, event_id) pair already
// exists, returns the existing row. The no-op DO UPDATE makes RETURNING yield
// the conflicting row in one round trip.
func (r *RepositoryImpl) Create(ctx context.Context, userID, eventID string) (*models.Like, error) {
	ctx, span := otel.Tracer("LikesRepository").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("event.id", eventID),
	))
	defer span.End()

	var like models.Like
	err := r.db.QueryRow(ctx, `
        INSERT INTO likes (user_id, event_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, event_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, event_id, created_at
    `, userID, eventID).Scan(&like.ID, &like.UserID, &like.EventID, &like.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create like",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create like")
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	span.SetStatus(codes.Ok, "Like created")
	return &like, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userID, eventID string) (bool, error) {
	ctx, span := otel.Tracer("LikesRepository").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("event.id", eventID),
	))
	defer span.End()

	tag, err := r.db.Exec(ctx, `
        DELETE FROM likes WHERE user_id = $1 AND event_id = $2
    `, userID, eventID)
	if err != nil {
		r.logger.Error("failed to delete like",
			zap.String("user_id", userID),
			zap.String("event_id", eventID),
			zap.Error(err))
		span.RecordError(err)
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	span.SetAttributes(attribute.Bool("like.deleted", deleted))
	return deleted, nil
}

func scanLikes(rows pgx.Rows) ([]models.Like, error) {
	var likes []models.Like
	for rows.Next() {
		var l models.Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.EventID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate like rows: %w", err)
	}
	return likes, nil
}
