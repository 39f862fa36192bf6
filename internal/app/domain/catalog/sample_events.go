package catalog

import (
	"time"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// SampleEvents returns the built-in event catalog used to seed an empty
// database. Food & Drink dominates on purpose: it is the product's flagship
// vertical.
func SampleEvents() []models.Event {
	return []models.Event{
		{
			ID: "rec_jp_001", Title: "Tokyo Sushi Masterclass",
			Description: "Learn to make authentic sushi with a master chef in Tokyo.",
			Category:    "Food & Drink", City: "Tokyo", Country: "Japan",
			IndoorOutdoor: models.Indoor, Rating: 4.9, RatingCount: 890,
			StartTime: ts("2024-03-15T10:00:00Z"), EndTime: ts("2024-03-15T14:00:00Z"),
			Lat: 35.6762, Lon: 139.6503, Source: "Recommendation",
		},
		{
			ID: "rec_jp_002", Title: "Osaka Street Food Tour",
			Description: "Explore Osaka's famous street food scene with a local guide.",
			Category:    "Food & Drink", City: "Osaka", Country: "Japan",
			IndoorOutdoor: models.Outdoor, Rating: 4.8, RatingCount: 650,
			StartTime: ts("2024-03-16T18:00:00Z"), EndTime: ts("2024-03-16T21:00:00Z"),
			Lat: 34.6937, Lon: 135.5023, Source: "Recommendation",
		},
		{
			ID: "rec_jp_003", Title: "Kyoto Tea Ceremony Experience",
			Description: "Traditional Japanese tea ceremony in a historic Kyoto temple.",
			Category:    "Food & Drink", City: "Kyoto", Country: "Japan",
			IndoorOutdoor: models.Indoor, Rating: 4.7, RatingCount: 420,
			StartTime: ts("2024-03-17T14:00:00Z"), EndTime: ts("2024-03-17T16:00:00Z"),
			Lat: 35.0116, Lon: 135.7681, Source: "Recommendation",
		},
		{
			ID: "rec_it_001", Title: "Rome Pasta Making Workshop",
			Description: "Learn to make authentic Italian pasta from scratch.",
			Category:    "Food & Drink", City: "Rome", Country: "Italy",
			IndoorOutdoor: models.Indoor, Rating: 4.8, RatingCount: 750,
			StartTime: ts("2024-03-18T11:00:00Z"), EndTime: ts("2024-03-18T14:00:00Z"),
			Lat: 41.9028, Lon: 12.4964, Source: "Recommendation",
		},
		{
			ID: "rec_it_002", Title: "Florence Wine Tasting Tour",
			Description: "Sample world-class Tuscan wines in historic cellars.",
			Category:    "Food & Drink", City: "Florence", Country: "Italy",
			IndoorOutdoor: models.Indoor, Rating: 4.9, RatingCount: 920,
			StartTime: ts("2024-03-19T16:00:00Z"), EndTime: ts("2024-03-19T19:00:00Z"),
			Lat: 43.7696, Lon: 11.2558, Source: "Recommendation",
		},
		{
			ID: "rec_it_003", Title: "Naples Pizza Making Class",
			Description: "Master the art of Neapolitan pizza in its birthplace.",
			Category:    "Food & Drink", City: "Naples", Country: "Italy",
			IndoorOutdoor: models.Indoor, Rating: 4.7, RatingCount: 680,
			StartTime: ts("2024-03-20T10:00:00Z"), EndTime: ts("2024-03-20T13:00:00Z"),
			Lat: 40.8518, Lon: 14.2681, Source: "Recommendation",
		},
		{
			ID: "rec_fr_001", Title: "Paris Cooking Class",
			Description: "Learn French culinary techniques from a professional chef.",
			Category:    "Food & Drink", City: "Paris", Country: "France",
			IndoorOutdoor: models.Indoor, Rating: 4.8, RatingCount: 1100,
			StartTime: ts("2024-03-21T09:00:00Z"), EndTime: ts("2024-03-21T12:00:00Z"),
			Lat: 48.8566, Lon: 2.3522, Source: "Recommendation",
		},
		{
			ID: "rec_fr_002", Title: "Lyon Food Market Tour",
			Description: "Explore Lyon's famous food markets and taste local specialties.",
			Category:    "Food & Drink", City: "Lyon", Country: "France",
			IndoorOutdoor: models.Outdoor, Rating: 4.6, RatingCount: 540,
			StartTime: ts("2024-03-22T08:00:00Z"), EndTime: ts("2024-03-22T11:00:00Z"),
			Lat: 45.7640, Lon: 4.8357, Source: "Recommendation",
		},
		{
			ID: "rec_es_001", Title: "Barcelona Tapas Crawl",
			Description: "Discover the best tapas bars in Barcelona's Gothic Quarter.",
			Category:    "Food & Drink", City: "Barcelona", Country: "Spain",
			IndoorOutdoor: models.Indoor, Rating: 4.7, RatingCount: 820,
			StartTime: ts("2024-03-23T19:00:00Z"), EndTime: ts("2024-03-23T22:00:00Z"),
			Lat: 41.3851, Lon: 2.1734, Source: "Recommendation",
		},
		{
			ID: "rec_es_002", Title: "Madrid Paella Workshop",
			Description: "Learn to cook authentic Spanish paella with local ingredients.",
			Category:    "Food & Drink", City: "Madrid", Country: "Spain",
			IndoorOutdoor: models.Indoor, Rating: 4.8, RatingCount: 650,
			StartTime: ts("2024-03-24T12:00:00Z"), EndTime: ts("2024-03-24T15:00:00Z"),
			Lat: 40.4168, Lon: -3.7038, Source: "Recommendation",
		},
		{
			ID: "rec_us_001", Title: "New York Food Tour",
			Description: "Taste diverse cuisines from around the world in NYC.",
			Category:    "Food & Drink", City: "New York", Country: "United States",
			IndoorOutdoor: models.Outdoor, Rating: 4.6, RatingCount: 1200,
			StartTime: ts("2024-03-25T11:00:00Z"), EndTime: ts("2024-03-25T15:00:00Z"),
			Lat: 40.7589, Lon: -73.9851, Source: "Recommendation",
		},
		{
			ID: "rec_uk_001", Title: "London Pub Food Tour",
			Description: "Experience traditional British pub food and local beers.",
			Category:    "Food & Drink", City: "London", Country: "United Kingdom",
			IndoorOutdoor: models.Indoor, Rating: 4.5, RatingCount: 950,
			StartTime: ts("2024-03-27T18:00:00Z"), EndTime: ts("2024-03-27T21:00:00Z"),
			Lat: 51.5074, Lon: -0.1278, Source: "Recommendation",
		},
		{
			ID: "rec_mx_001", Title: "Mexico City Taco Tour",
			Description: "Authentic Mexican tacos and street food experience.",
			Category:    "Food & Drink", City: "Mexico City", Country: "Mexico",
			IndoorOutdoor: models.Outdoor, Rating: 4.8, RatingCount: 920,
			StartTime: ts("2024-04-06T18:00:00Z"), EndTime: ts("2024-04-06T21:00:00Z"),
			Lat: 19.4326, Lon: -99.1332, Source: "Recommendation",
		},
		{
			ID: "rec_th_001", Title: "Bangkok Street Food Tour",
			Description: "Explore Thailand's famous street food scene with local guides.",
			Category:    "Food & Drink", City: "Bangkok", Country: "Thailand",
			IndoorOutdoor: models.Outdoor, Rating: 4.9, RatingCount: 1100,
			StartTime: ts("2024-04-10T18:00:00Z"), EndTime: ts("2024-04-10T21:00:00Z"),
			Lat: 13.7563, Lon: 100.5018, Source: "Recommendation",
		},
		{
			ID: "rec_th_002", Title: "Chiang Mai Cooking Class",
			Description: "Learn to cook authentic Thai dishes with local ingredients.",
			Category:    "Food & Drink", City: "Chiang Mai", Country: "Thailand",
			IndoorOutdoor: models.Indoor, Rating: 4.8, RatingCount: 780,
			StartTime: ts("2024-04-11T10:00:00Z"), EndTime: ts("2024-04-11T14:00:00Z"),
			Lat: 18.7883, Lon: 98.9853, Source: "Recommendation",
		},
		{
			ID: "rec_other_001", Title: "Paris City Walking Tour",
			Description: "Explore the beautiful streets of Paris with a guided walking tour.",
			Category:    "Sightseeing", City: "Paris", Country: "France",
			IndoorOutdoor: models.Outdoor, Rating: 4.8, RatingCount: 1250,
			StartTime: ts("2024-03-29T10:00:00Z"), EndTime: ts("2024-03-29T14:00:00Z"),
			Lat: 48.8566, Lon: 2.3522, Source: "Recommendation",
		},
		{
			ID: "rec_other_002", Title: "London Museum Tour",
			Description: "Visit world-class museums and cultural sites in London.",
			Category:    "History & Heritage", City: "London", Country: "United Kingdom",
			IndoorOutdoor: models.Indoor, Rating: 4.7, RatingCount: 2100,
			StartTime: ts("2024-03-30T09:00:00Z"), EndTime: ts("2024-03-30T17:00:00Z"),
			Lat: 51.5074, Lon: -0.1278, Source: "Recommendation",
		},
	}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
