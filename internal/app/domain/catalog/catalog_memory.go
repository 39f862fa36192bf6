package catalog

import (
	"context"
	"strings"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository serves a fixed event list. It backs unit tests and stands
// in for the database when none is configured.
type MemoryRepository struct {
	events []models.Event
	byID   map[string]models.Event
}

func NewMemoryRepository(events []models.Event) *MemoryRepository {
	byID := make(map[string]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	return &MemoryRepository{events: events, byID: byID}
}

func (r *MemoryRepository) FindAll(_ context.Context, countryFilter string) ([]models.Event, error) {
	if countryFilter == "" {
		out := make([]models.Event, len(r.events))
		copy(out, r.events)
		return out, nil
	}
	var out []models.Event
	for _, e := range r.events {
		if strings.EqualFold(e.Country, countryFilter) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*models.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	return len(r.events), nil
}

func (r *MemoryRepository) Seed(_ context.Context, events []models.Event) error {
	for _, e := range events {
		if _, ok := r.byID[e.ID]; ok {
			continue
		}
		r.byID[e.ID] = e
		r.events = append(r.events, e)
	}
	return nil
}
