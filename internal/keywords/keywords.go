// Package keywords extracts the most frequent significant words from a set
// of search result titles.
package keywords

import (
	"cmp"
	"regexp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seotitles/internal/models"
)

// TopN is the maximum number of keywords returned by Extract.
const TopN = 10

// wordPattern matches maximal runs of Unicode word characters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// StopWords are Spanish function words ignored when counting.
var StopWords = map[string]struct{}{
	"a": {}, "de": {}, "en": {}, "y": {}, "el": {}, "la": {}, "los": {}, "las": {},
	"un": {}, "una": {}, "unos": {}, "unas": {}, "del": {}, "al": {}, "que": {}, "por": {},
}

// IsStopWord reports whether a lower-cased token is ignored by Extract.
func IsStopWord(token string) bool {
	_, ok := StopWords[token]
	return ok
}

// Tokenize lower-cases every title and returns its word tokens in order.
func Tokenize(titles []string) []string {
	lower := cases.Lower(language.Und)

	var tokens []string
	for _, title := range titles {
		tokens = append(tokens, wordPattern.FindAllString(lower.String(title), -1)...)
	}
	return tokens
}

// Extract returns up to TopN non-stop-word tokens ordered by descending
// count. Ties keep the order in which the tokens were first seen.
func Extract(titles []string) []models.KeywordCount {
	counts := make(map[string]int)
	var order []string

	for _, token := range Tokenize(titles) {
		if IsStopWord(token) {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	result := make([]models.KeywordCount, 0, len(order))
	for _, word := range order {
		result = append(result, models.KeywordCount{Word: word, Count: counts[word]})
	}

	slices.SortStableFunc(result, func(a, b models.KeywordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(result) > TopN {
		result = result[:TopN]
	}
	return result
}
