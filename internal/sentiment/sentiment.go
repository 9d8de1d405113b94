// Package sentiment holds the text-scoring heuristics: a lexicon-based
// polarity score, pros/cons sentence extraction, and the aggregate
// sentiment math. Everything here is a pure function over plain data so
// the scoring stays portable and trivially testable.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/icycoldveins/product-review-aggregator/internal/review"
)

// Score returns the lexicon polarity of a text: the sum of token
// valences divided by the total token count. Unknown tokens contribute
// zero but still count toward the divisor. Empty text scores 0.
func Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	var total float64
	for _, tok := range tokens {
		total += lexicon[tok]
	}
	return total / float64(len(tokens))
}

// ScoreAll returns the arithmetic mean of Score over the given texts,
// or 0 for an empty slice.
func ScoreAll(texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	var total float64
	for _, text := range texts {
		total += Score(text)
	}
	return total / float64(len(texts))
}

// Classify returns the sentiment label for a review. An explicit
// sentiment wins; otherwise it is derived from the rating (>=4
// positive, <=2 negative, else neutral). Every place that needs a
// sentiment for a review must go through this fallback.
func Classify(r review.Review) string {
	if r.Sentiment != "" {
		return r.Sentiment
	}
	switch {
	case r.Rating >= 4:
		return review.SentimentPositive
	case r.Rating <= 2:
		return review.SentimentNegative
	default:
		return review.SentimentNeutral
	}
}

// Overall maps each review to positive=1, neutral=0.5, negative=0 and
// returns the mean. An empty slice returns 0.5: no data is a neutral
// prior, not a negative signal.
func Overall(reviews []review.Review) float64 {
	if len(reviews) == 0 {
		return 0.5
	}
	var total float64
	for _, r := range reviews {
		switch Classify(r) {
		case review.SentimentPositive:
			total += 1
		case review.SentimentNegative:
			total += 0
		default:
			total += 0.5
		}
	}
	return total / float64(len(reviews))
}

// tokenize lowercases the text and splits it on any non-alphanumeric run.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
