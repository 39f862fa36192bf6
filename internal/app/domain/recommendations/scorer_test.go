package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// zeroJitter makes the ranking fully deterministic.
type zeroJitter struct{}

func (zeroJitter) Float64() float64 { return 0 }

// seqJitter replays a fixed sequence of samples.
type seqJitter struct {
	values []float64
	pos    int
}

func (s *seqJitter) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func deterministicScorer() *Scorer {
	return NewScorer(DefaultWeights, zeroJitter{})
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestScorerRanksByScore(t *testing.T) {
	// a: 4.0 + 2.0 (food) + 0.8 (category hit) + 0.5 (country hit) +
	// 0.3 (city hit) + 0.2 (indoor) = 7.8
	// b: 4.9, no boosts
	a := models.Event{ID: "a", Category: "Food & Drink", Country: "Japan", City: "Tokyo", IndoorOutdoor: models.Indoor, Rating: 4.0}
	b := models.Event{ID: "b", Category: "Culture", Country: "France", City: "Paris", IndoorOutdoor: models.Outdoor, Rating: 4.9}

	profile := models.NewPreferenceProfile()
	profile.Categories["Food & Drink"] = 2
	profile.Countries["Japan"] = 2
	profile.Cities["Tokyo"] = 1

	got := deterministicScorer().Score([]models.Event{b, a}, profile, nil, "", DefaultLimit)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, eventIDs(got))
}

func TestScorerExcludesLikedEvents(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Rating: 5.0},
		{ID: "e2", Rating: 4.0},
		{ID: "e3", Rating: 3.0},
	}
	liked := map[string]struct{}{"e1": {}, "e3": {}}

	got := deterministicScorer().Score(events, models.NewPreferenceProfile(), liked, "", DefaultLimit)

	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)
}

func TestScorerCountryNarrowingIsCaseInsensitive(t *testing.T) {
	events := []models.Event{
		{ID: "jp", Country: "Japan", Rating: 3.0},
		{ID: "fr", Country: "France", Rating: 5.0},
	}

	got := deterministicScorer().Score(events, models.NewPreferenceProfile(), nil, "japan", DefaultLimit)

	require.Len(t, got, 1)
	assert.Equal(t, "jp", got[0].ID)
}

func TestScorerCountryFallbackWhenNoMatch(t *testing.T) {
	events := []models.Event{
		{ID: "jp", Country: "Japan", Rating: 3.0},
		{ID: "fr", Country: "France", Rating: 5.0},
	}

	// Nothing matches Brazil; the whole pool must survive rather than
	// returning an empty list.
	got := deterministicScorer().Score(events, models.NewPreferenceProfile(), nil, "Brazil", DefaultLimit)

	assert.Len(t, got, 2)
}

func TestScorerFoodDrinkBoost(t *testing.T) {
	// 3.5 + 2.0 beats the plain 5.0.
	events := []models.Event{
		{ID: "plain", Category: "Culture", Rating: 5.0},
		{ID: "food", Category: "Food & Drink", Rating: 3.5},
	}

	got := deterministicScorer().Score(events, models.NewPreferenceProfile(), nil, "", DefaultLimit)

	require.Len(t, got, 2)
	assert.Equal(t, "food", got[0].ID)
}

func TestScorerLimitBounds(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Rating: 5.0},
		{ID: "e2", Rating: 4.0},
	}
	scorer := deterministicScorer()
	profile := models.NewPreferenceProfile()

	assert.Empty(t, scorer.Score(events, profile, nil, "", 0))
	assert.Empty(t, scorer.Score(events, profile, nil, "", -3))
	assert.Len(t, scorer.Score(events, profile, nil, "", 1), 1)
	assert.Len(t, scorer.Score(events, profile, nil, "", 50), 2)
}

func TestScorerStableOrderOnTies(t *testing.T) {
	events := []models.Event{
		{ID: "first", Rating: 4.0},
		{ID: "second", Rating: 4.0},
		{ID: "third", Rating: 4.0},
	}

	got := deterministicScorer().Score(events, models.NewPreferenceProfile(), nil, "", DefaultLimit)

	assert.Equal(t, []string{"first", "second", "third"}, eventIDs(got))
}

func TestScorerJitterCanBreakNearTies(t *testing.T) {
	// The gap between the two events is smaller than the jitter span, so a
	// large sample for the trailing event flips the order.
	events := []models.Event{
		{ID: "ahead", Rating: 4.02},
		{ID: "behind", Rating: 4.0},
	}
	scorer := NewScorer(DefaultWeights, &seqJitter{values: []float64{0.0, 0.9}})

	got := scorer.Score(events, models.NewPreferenceProfile(), nil, "", DefaultLimit)

	require.Len(t, got, 2)
	assert.Equal(t, "behind", got[0].ID)
}

func TestScorerNilProfile(t *testing.T) {
	events := []models.Event{{ID: "e1", Rating: 4.0}}

	got := deterministicScorer().Score(events, nil, nil, "", DefaultLimit)

	assert.Len(t, got, 1)
}
