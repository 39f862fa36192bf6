package models

import "time"

// IndoorOutdoor classifies where an event takes place.
type IndoorOutdoor string

const (
	Indoor  IndoorOutdoor = "indoor"
	Outdoor IndoorOutdoor = "outdoor"
)

// Event is a catalog entry. Events are immutable from the API's point of view;
// the catalog owns their lifecycle.
type Event struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	IndoorOutdoor IndoorOutdoor `json:"indoor_outdoor"`
	Rating        float64       `json:"rating"`
	RatingCount   int           `json:"ratingCount"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Lat           float64       `json:"lat"`
	Lon           float64       `json:"lon"`
	Source        string        `json:"source,omitempty"`
}

// PreferenceProfile aggregates a user's like/review history. It is derived per
// request and never persisted.
type PreferenceProfile struct {
	Categories    map[string]int      `json:"categories"`
	Countries     map[string]int      `json:"countries"`
	Cities        map[string]int      `json:"cities"`
	IndoorOutdoor IndoorOutdoorCounts `json:"indoorOutdoor"`
	AvgRating     float64             `json:"avgRating"`
	TotalReviews  int                 `json:"totalReviews"`
}

type IndoorOutdoorCounts struct {
	Indoor  int `json:"indoor"`
	Outdoor int `json:"outdoor"`
}

// NewPreferenceProfile returns an empty profile with allocated maps.
func NewPreferenceProfile() *PreferenceProfile {
	return &PreferenceProfile{
		Categories: make(map[string]int),
		Countries:  make(map[string]int),
		Cities:     make(map[string]int),
	}
}

// RecommendationResult is what the recommendation service hands back to the
// HTTP layer. TotalLikes and Preferences ride along for observability.
type RecommendationResult struct {
	Recommendations []Event            `json:"recommendations"`
	Preferences     *PreferenceProfile `json:"userPreferences,omitempty"`
	TotalLikes      int                `json:"totalLikes"`
	Message         string             `json:"message,omitempty"`
}
