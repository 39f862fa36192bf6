package recommendations

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// foodDrinkCategory gets a flat boost regardless of the user's history: food
// content is the product's flagship vertical.
const foodDrinkCategory = "Food & Drink"

// DefaultLimit is how many recommendations a request gets when it does not
// ask for a specific count.
const DefaultLimit = 10

// Weights holds the additive score boosts. Boosts are additive and
// independent so no single signal dominates the ranking. The defaults are
// load-bearing: clients and stored expectations assume them.
type Weights struct {
	FoodDrink       float64
	TargetCountry   float64
	ProfileCategory float64
	ProfileCountry  float64
	ProfileCity     float64
	Indoor          float64
	// Jitter scales a uniform [0,1) sample; the perturbation keeps repeat
	// requests from rendering a visibly static list.
	Jitter float64
}

// DefaultWeights are the reference scoring constants.
var DefaultWeights = Weights{
	FoodDrink:       2.0,
	TargetCountry:   1.5,
	ProfileCategory: 0.8,
	ProfileCountry:  0.5,
	ProfileCity:     0.3,
	Indoor:          0.2,
	Jitter:          0.1,
}

// JitterSource yields the next float in [0,1). Production uses math/rand;
// tests inject a fixed source to make the ranking deterministic.
type JitterSource interface {
	Float64() float64
}

type randJitter struct{}

func (randJitter) Float64() float64 { return rand.Float64() }

// NewRandJitter returns the production jitter source.
func NewRandJitter() JitterSource { return randJitter{} }

// Scorer ranks candidate events for one user.
type Scorer struct {
	weights Weights
	jitter  JitterSource
}

func NewScorer(weights Weights, jitter JitterSource) *Scorer {
	return &Scorer{
		weights: weights,
		jitter:  jitter,
	}
}

type scoredEvent struct {
	event models.Event
	score float64
}

// Score produces the ranked, truncated recommendation list:
//
//  1. events the user already liked are excluded;
//  2. if targetCountry is set the pool narrows to matching events, falling
//     back to the whole pool when the narrowing would empty it;
//  3. each candidate scores rating + additive boosts + jitter;
//  4. candidates sort by score descending (stable on input order, so a zero
//     jitter source gives a reproducible ranking);
//  5. the top limit entries are returned, scores stripped.
func (s *Scorer) Score(candidates []models.Event, profile *models.PreferenceProfile, likedEventIDs map[string]struct{}, targetCountry string, limit int) []models.Event {
	if limit <= 0 {
		return []models.Event{}
	}

	available := make([]models.Event, 0, len(candidates))
	for _, event := range candidates {
		if _, liked := likedEventIDs[event.ID]; liked {
			continue
		}
		available = append(available, event)
	}

	pool := available
	if targetCountry != "" {
		narrowed := make([]models.Event, 0, len(available))
		for _, event := range available {
			if strings.EqualFold(event.Country, targetCountry) {
				narrowed = append(narrowed, event)
			}
		}
		// An over-narrow country filter must not starve the user of results.
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}

	scored := make([]scoredEvent, len(pool))
	for i, event := range pool {
		scored[i] = scoredEvent{event: event, score: s.scoreEvent(event, profile, targetCountry)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > len(scored) {
		limit = len(scored)
	}
	result := make([]models.Event, limit)
	for i := range result {
		result[i] = scored[i].event
	}
	return result
}

func (s *Scorer) scoreEvent(event models.Event, profile *models.PreferenceProfile, targetCountry string) float64 {
	score := event.Rating

	if event.Category == foodDrinkCategory {
		score += s.weights.FoodDrink
	}
	if targetCountry != "" && strings.EqualFold(event.Country, targetCountry) {
		score += s.weights.TargetCountry
	}
	if profile != nil {
		if profile.Categories[event.Category] > 0 {
			score += s.weights.ProfileCategory
		}
		if profile.Countries[event.Country] > 0 {
			score += s.weights.ProfileCountry
		}
		if profile.Cities[event.City] > 0 {
			score += s.weights.ProfileCity
		}
	}
	if event.IndoorOutdoor == models.Indoor {
		score += s.weights.Indoor
	}

	return score + s.jitter.Float64()*s.weights.Jitter
}
