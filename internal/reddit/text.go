package reddit

import (
	"regexp"
	"strings"
)

const (
	substantialBodyLength = 50
	minCleanedLength      = 20
	maxTextLength         = 1000
)

var removedMarkers = regexp.MustCompile(`(?i)\[(removed|deleted)\]`)

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
	"&#x200B;", "", // zero-width space
)

// ExtractReviewText picks the review text for a post: the body when it
// is substantial, otherwise the title (for link posts the title is
// often the whole review). Reddit markup markers and HTML entities are
// stripped; if that leaves too little, the title wins. Text over
// maxTextLength is truncated with an ellipsis.
func ExtractReviewText(title, selftext string) string {
	text := title
	if len(selftext) > substantialBodyLength {
		text = selftext
	}

	text = removedMarkers.ReplaceAllString(text, "")
	text = strings.TrimSpace(entityReplacer.Replace(text))

	if len(text) < minCleanedLength {
		text = title
	}

	if len(text) > maxTextLength {
		return text[:maxTextLength-3] + "..."
	}
	return text
}
