package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/icycoldveins/product-review-aggregator/internal/review"
	"github.com/icycoldveins/product-review-aggregator/internal/sentiment"
)

const (
	searchBaseURL = "https://oauth.reddit.com"

	// Stopping policy for the multi-pass search: stop globally at
	// maxReviews, run the fallback matrix only when the site-wide pass
	// collected fewer than fallbackThreshold, and move on to the next
	// subreddit once the total reaches perSubredditTarget.
	maxReviews         = 20
	fallbackThreshold  = 10
	perSubredditTarget = 5

	// Link posts with less cleaned text than this are skipped.
	minTextLength = 30

	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// subreddits searched by the fallback pass, in order.
var subreddits = []string{
	"reviews", "gadgets", "technology", "TechConsumerAdvice", "ProductReviews",
	"BuyItForLife", "GoodValue", "ProductTesting", "tech", "Smartphones",
	"laptops", "headphones", "buildapc", "techsupport", "AskTechnology",
}

// searchTerms returns the query variants tried per subreddit.
func searchTerms(product string) []string {
	return []string{
		product + " review",
		product + " experience",
		product + " pros cons",
		product,
		product + " thoughts",
		product + " worth it",
		product + " recommend",
	}
}

// Fetcher turns Reddit search results into normalized reviews. It is
// best-effort and precision-over-recall: first page only, Reddit's own
// relevance sort, sequential calls, no retries.
type Fetcher struct {
	baseURL string
	http    *http.Client
}

type FetcherOption func(*Fetcher)

// WithFetcherBaseURL points the fetcher at an alternate API host.
func WithFetcherBaseURL(base string) FetcherOption {
	return func(f *Fetcher) { f.baseURL = strings.TrimRight(base, "/") }
}

// WithFetcherHTTPClient overrides the HTTP client used for searches.
func WithFetcherHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) { f.http = hc }
}

func NewFetcher(userAgent string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{baseURL: searchBaseURL}
	for _, opt := range opts {
		opt(f)
	}
	if f.http == nil {
		f.http = &http.Client{Transport: newUserAgentTransport(userAgent, nil)}
	}
	return f
}

// searchAttempt describes one call against the search API.
type searchAttempt struct {
	subreddit string // empty for a site-wide search
	query     string
}

// collector accumulates reviews across search passes, deduplicating by
// post id and enforcing the global cap.
type collector struct {
	seen    map[string]struct{}
	reviews []review.Review
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) has(id string) bool {
	_, ok := c.seen[id]
	return ok
}

func (c *collector) add(r review.Review) {
	if c.full() || c.has(r.ID) {
		return
	}
	c.seen[r.ID] = struct{}{}
	c.reviews = append(c.reviews, r)
}

func (c *collector) count() int { return len(c.reviews) }
func (c *collector) full() bool { return len(c.reviews) >= maxReviews }

// Fetch searches Reddit for posts discussing the product and maps them
// to reviews. Auth-class failures (ErrAuthRequired, ErrAuthExpired)
// abort immediately; any other per-call failure is logged and the
// remaining attempts continue.
func (f *Fetcher) Fetch(ctx context.Context, query, accessToken string) ([]review.Review, error) {
	if accessToken == "" {
		return nil, ErrAuthRequired
	}

	col := newCollector()

	// Pass 1: site-wide search, filtered to posts that actually
	// mention the product.
	posts, err := f.search(ctx, accessToken, searchAttempt{query: query + " review"})
	if err != nil {
		if errors.Is(err, ErrAuthExpired) {
			return nil, err
		}
		log.Warn().Err(err).Str("query", query).Msg("site-wide search failed, falling back to subreddits")
	}
	needle := strings.ToLower(query)
	for _, p := range posts {
		if col.full() {
			break
		}
		if !mentionsProduct(p, needle) {
			continue
		}
		if r, ok := reviewFromPost(p); ok {
			col.add(r)
		}
	}

	// Pass 2: subreddit x search-term matrix, only when the site-wide
	// pass came up short.
	if col.count() < fallbackThreshold {
		if err := f.fallbackSearch(ctx, accessToken, query, col); err != nil {
			return nil, err
		}
	}

	log.Info().Str("query", query).Int("reviews", col.count()).Msg("review search finished")
	return col.reviews, nil
}

func (f *Fetcher) fallbackSearch(ctx context.Context, accessToken, query string, col *collector) error {
	terms := searchTerms(query)

	for _, sub := range subreddits {
		for _, term := range terms {
			posts, err := f.search(ctx, accessToken, searchAttempt{subreddit: sub, query: term})
			if err != nil {
				if errors.Is(err, ErrAuthExpired) {
					return err
				}
				log.Warn().Err(err).Str("subreddit", sub).Str("term", term).Msg("subreddit search failed")
				continue
			}
			for _, p := range posts {
				if col.full() {
					break
				}
				if r, ok := reviewFromPost(p); ok {
					col.add(r)
				}
			}
			if col.count() >= perSubredditTarget {
				break
			}
		}
		if col.full() {
			break
		}
	}
	return nil
}

// search issues one call against the search endpoint and returns the
// posts from the first result page.
func (f *Fetcher) search(ctx context.Context, accessToken string, att searchAttempt) ([]post, error) {
	params := url.Values{
		"q":    {att.query},
		"sort": {"relevance"},
		"t":    {"all"},
	}
	path := "/search"
	if att.subreddit != "" {
		path = "/r/" + att.subreddit + "/search"
		params.Set("restrict_sr", "on")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrAuthExpired
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search returned %d: %s", resp.StatusCode, body)
	}

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	posts := make([]post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}

// mentionsProduct reports whether the post title or body contains the
// product name, case-insensitively.
func mentionsProduct(p post, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Selftext), needle)
}

// reviewFromPost maps a raw post to a Review. Link posts with barely
// any text are rejected; self posts pass regardless of length.
func reviewFromPost(p post) (review.Review, bool) {
	text := ExtractReviewText(p.Title, p.Selftext)
	if len(text) < minTextLength && !p.IsSelf {
		return review.Review{}, false
	}

	ratio := p.UpvoteRatio
	if ratio == 0 {
		ratio = 0.5
	}

	return review.Review{
		ID:        p.ID,
		Source:    "Reddit",
		Author:    p.Author,
		Rating:    ConvertScoreToRating(p.Score, ratio),
		Date:      time.Unix(int64(p.CreatedUTC), 0).UTC().Format("2006-01-02"),
		Text:      text,
		Sentiment: sentimentLabel(sentiment.Score(text)),
	}, true
}

func sentimentLabel(score float64) string {
	switch {
	case score >= positiveThreshold:
		return review.SentimentPositive
	case score <= negativeThreshold:
		return review.SentimentNegative
	default:
		return review.SentimentNeutral
	}
}
