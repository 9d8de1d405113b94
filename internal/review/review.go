package review

// Sentiment labels attached to reviews and used by the aggregation math.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Review is a single normalized review derived from one Reddit post.
// Immutable once constructed; ID is unique per source and is used to
// deduplicate results across search passes.
type Review struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment,omitempty"`
}

// ProductSummary is the aggregate returned by the reviews endpoint.
// Recomputed on every query, never persisted.
type ProductSummary struct {
	Name           string   `json:"name"`
	AverageRating  float64  `json:"averageRating"`
	ReviewCount    int      `json:"reviewCount"`
	SentimentScore float64  `json:"sentimentScore"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Reviews        []Review `json:"reviews"`
}

// AverageRating returns the arithmetic mean of the review ratings,
// or 0 for an empty slice.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
