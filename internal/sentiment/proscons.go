package sentiment

import "strings"

// maxEntries caps each of the pros and cons lists.
const maxEntries = 5

var positiveIndicators = []string{
	"love", "great", "excellent", "good", "best",
	"perfect", "awesome", "amazing", "fantastic", "recommend",
}

var negativeIndicators = []string{
	"bad", "poor", "terrible", "awful", "worst", "disappointed",
	"issue", "problem", "difficult", "annoying", "broke",
}

// ExtractProsAndCons splits each text into sentences and picks out short
// representative ones by keyword matching. A sentence containing a
// positive indicator becomes a pros candidate; symmetric for cons. A
// sentence carrying both kinds of keyword lands in both lists. Entries
// are lowercased with the first letter capitalized, deduplicated, and
// capped at maxEntries per list.
func ExtractProsAndCons(texts []string) (pros, cons []string) {
	pros = make([]string, 0, maxEntries)
	cons = make([]string, 0, maxEntries)

	for _, text := range texts {
		for _, sentence := range splitSentences(text) {
			sentence = strings.ToLower(sentence)
			if containsAny(sentence, positiveIndicators) {
				pros = appendUnique(pros, capitalize(sentence))
			}
			if containsAny(sentence, negativeIndicators) {
				cons = appendUnique(cons, capitalize(sentence))
			}
		}
	}
	return pros, cons
}

// splitSentences cuts a text on ./!/? runs, trimming whitespace and
// dropping empty fragments.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func containsAny(sentence string, indicators []string) bool {
	for _, term := range indicators {
		if strings.Contains(sentence, term) {
			return true
		}
	}
	return false
}

func appendUnique(list []string, entry string) []string {
	if len(list) >= maxEntries {
		return list
	}
	for _, existing := range list {
		if existing == entry {
			return list
		}
	}
	return append(list, entry)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
