package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository is the Event Catalog: the candidate pool the recommendation
// engine scores. The catalog is read-only for the rest of the system; Seed is
// a bootstrap concern.
type Repository interface {
	// FindAll returns every catalog event. A non-empty countryFilter narrows
	// the result to events whose country matches case-insensitively.
	FindAll(ctx context.Context, countryFilter string) ([]models.Event, error)
	// FindByID returns models.ErrNotFound when the id has no catalog entry.
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context, events []models.Event) error
}

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type RepositoryImpl struct {
	logger *zap.Logger
	db     Querier
	cache  *cache.Cache
}

func NewRepository(db Querier, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     db,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

const eventColumns = "id, title, description, category, city, country, indoor_outdoor, rating, rating_count, start_time, end_time, lat, lon"

func (r *RepositoryImpl) FindAll(ctx context.Context, countryFilter string) ([]models.Event, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "FindAll", trace.WithAttributes(
		attribute.String("country.filter", countryFilter),
	))
	defer span.End()

	cacheKey := "events:all"
	if countryFilter != "" {
		cacheKey = "events:country:" + strings.ToLower(countryFilter)
	}
	if cached, found := r.cache.Get(cacheKey); found {
		if events, ok := cached.([]models.Event); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return events, nil
		}
	}

	builder := sq.Select(
		"id", "title", "description", "category", "city", "country",
		"indoor_outdoor", "rating", "rating_count", "start_time", "end_time", "lat", "lon",
	).
		From("events").
		OrderBy("rating DESC", "id ASC").
		PlaceholderFormat(sq.Dollar)
	if countryFilter != "" {
		builder = builder.Where(sq.Expr("lower(country) = lower(?)", countryFilter))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query events", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to query events")
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	r.cache.Set(cacheKey, events, cache.DefaultExpiration)
	span.SetAttributes(attribute.Int("events.count", len(events)))
	span.SetStatus(codes.Ok, "Events retrieved")
	return events, nil
}

func (r *RepositoryImpl) FindByID(ctx context.Context, id string) (*models.Event, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "FindByID", trace.WithAttributes(
		attribute.String("event.id", id),
	))
	defer span.End()

	query := "SELECT " + eventColumns + " FROM events WHERE id = $1"
	row := r.db.QueryRow(ctx, query, id)

	var e models.Event
	var indoorOutdoor string
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.City, &e.Country,
		&indoorOutdoor, &e.Rating, &e.RatingCount, &e.StartTime, &e.EndTime, &e.Lat, &e.Lon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("failed to query event by id", zap.String("event_id", id), zap.Error(err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query event %s: %w", id, err)
	}
	e.IndoorOutdoor = models.IndoorOutdoor(indoorOutdoor)

	span.SetStatus(codes.Ok, "Event retrieved")
	return &e, nil
}

func (r *RepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// Seed inserts events that are not already present. Used at boot to load the
// sample catalog into an empty database.
func (r *RepositoryImpl) Seed(ctx context.Context, events []models.Event) error {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "Seed", trace.WithAttributes(
		attribute.Int("events.count", len(events)),
	))
	defer span.End()

	query := `
        INSERT INTO events (
            id, title, description, category, city, country,
            indoor_outdoor, rating, rating_count, start_time, end_time, lat, lon
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (id) DO NOTHING
    `
	for _, e := range events {
		if _, err := r.db.Exec(ctx, query,
			e.ID, e.Title, e.Description, e.Category, e.City, e.Country,
			string(e.IndoorOutdoor), e.Rating, e.RatingCount, e.StartTime, e.EndTime, e.Lat, e.Lon,
		); err != nil {
			r.logger.Error("failed to seed event", zap.String("event_id", e.ID), zap.Error(err))
			span.RecordError(err)
			return fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}

	r.cache.Flush()
	span.SetStatus(codes.Ok, "Events seeded")
	return nil
}

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var e models.Event
		var indoorOutdoor string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.City, &e.Country,
			&indoorOutdoor, &e.Rating, &e.RatingCount, &e.StartTime, &e.EndTime, &e.Lat, &e.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		e.IndoorOutdoor = models.IndoorOutdoor(indoorOutdoor)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return events, nil
}
