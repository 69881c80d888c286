package display

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultMaxStars is the number of stars shown when the caller does not say.
const DefaultMaxStars = 5

// Tier is the rendering state of a single star.
type Tier int

const (
	TierEmpty Tier = iota
	TierHalf
	TierFilled
)

func (t Tier) String() string {
	switch t {
	case TierFilled:
		return "filled"
	case TierHalf:
		return "half"
	default:
		return "empty"
	}
}

// TierFor decides how star number star (1-based) renders for rating.
// A rating of exactly star-0.5 is a half star.
func TierFor(star int, rating float64) Tier {
	s := float64(star)
	switch {
	case s <= rating:
		return TierFilled
	case s-0.5 <= rating:
		return TierHalf
	default:
		return TierEmpty
	}
}

// IsActive reports whether star is tinted with the active colour.
func IsActive(star int, rating float64) bool {
	return TierFor(star, rating) != TierEmpty
}

// Tiers returns the tier of every star from 1 to maxStars.
func Tiers(rating float64, maxStars int) []Tier {
	if maxStars <= 0 {
		maxStars = DefaultMaxStars
	}
	tiers := make([]Tier, maxStars)
	for i := range tiers {
		tiers[i] = TierFor(i+1, rating)
	}
	return tiers
}

// SelectStar is the rating produced by tapping star. Only whole stars can be
// selected; there is no half-star gesture.
func SelectStar(star, maxStars int) float64 {
	if maxStars <= 0 {
		maxStars = DefaultMaxStars
	}
	return float64(clamp(star, 1, maxStars))
}

// RoundRating rounds to one decimal place, halves away from zero.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}

// RatingLabel is the text shown next to the stars, e.g. "4.5".
func RatingLabel(rating float64) string {
	return strconv.FormatFloat(RoundRating(rating), 'f', 1, 64)
}

// LocalizedRatingLabel formats the label with the decimal separator of tag.
func LocalizedRatingLabel(rating float64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%.1f", RoundRating(rating))
}
