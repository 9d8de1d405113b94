package reddit

import "math"

// ConvertScoreToRating derives a 1-5 star rating from a post's raw
// score and upvote ratio. Downvoted content reads as a pan regardless
// of ratio. Otherwise the ratio sets the base (50% upvoted = 2.5 stars,
// 100% = 5) and popularity adds a fixed-band bonus before rounding and
// clamping. Pure and deterministic.
func ConvertScoreToRating(score int, upvoteRatio float64) int {
	if score < 0 {
		return 1
	}

	base := upvoteRatio * 5

	var bonus float64
	switch {
	case score > 100:
		bonus = 1
	case score > 50:
		bonus = 0.8
	case score > 20:
		bonus = 0.6
	case score > 10:
		bonus = 0.4
	case score > 5:
		bonus = 0.2
	}

	rating := int(math.Round(base + bonus))
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
