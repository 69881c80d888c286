// Package models holds the plain data the components render, plus the sample
// values used by the catalog and the preview.
package models

import (
	"time"

	"github.com/appnotresponding/rumbo/internal/display"
)

// Place is a point of interest that can be added to an itinerary.
type Place struct {
	ID          string
	Name        string
	Description string
	OpenHours   string
	Price       string
	Latitude    float64
	Longitude   float64
	Rating      float64
	Reviews     []Review
	ImageURL    string
}

// Review is a visitor's rating of a place.
type Review struct {
	ID                    string
	AuthorName            string
	AuthorProfilePhotoURL string
	Rating                float64
	Text                  string
	Time                  time.Time
}

// AverageRating is the mean review rating, or the place's own rating when it
// has no reviews.
func (p Place) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return p.Rating
	}

	var sum float64
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return display.RoundRating(sum / float64(len(p.Reviews)))
}

// SamplePlace is the place shown in component previews.
var SamplePlace = Place{
	ID:          "1",
	Name:        "Museo del Oro",
	Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed consectetur bibendum diam a interdum. Donec tempus fringilla auctor. Vivamus imperdiet, orci eu consectetur placerat, dolor nibh tristique lorem, dictum faucibus augue massa in purus.",
	OpenHours:   "9:00 AM - 5:00 PM",
	Price:       "Gratis",
	Latitude:    4.6018,
	Longitude:   -74.0719,
	Rating:      4.5,
}
