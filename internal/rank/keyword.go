package rank

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	latinRunPattern = regexp.MustCompile(`[a-z0-9]+`)
	cjkRunPattern   = regexp.MustCompile(`[\x{4e00}-\x{9fff}]+`)
)

// Tokens extracts the keyword token set from text: lowercased Latin and
// digit runs as whole tokens, CJK runs as overlapping character bigrams.
// Tokens are deduplicated preserving first-seen order, and tokens
// shorter than two runes are dropped.
func Tokens(text string) []string {
	normalized := strings.ToLower(text)

	var raw []string
	raw = append(raw, latinRunPattern.FindAllString(normalized, -1)...)

	for _, run := range cjkRunPattern.FindAllString(normalized, -1) {
		chars := []rune(run)
		if len(chars) == 1 {
			raw = append(raw, run)
			continue
		}
		for i := 0; i < len(chars)-1; i++ {
			raw = append(raw, string(chars[i:i+2]))
		}
	}

	seen := make(map[string]struct{}, len(raw))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}

	return tokens
}

// KeywordScore returns the fraction of query tokens present in the
// text's token set. A query producing no tokens scores 0 everywhere.
func KeywordScore(query, text string) float64 {
	queryTokens := Tokens(query)
	if len(queryTokens) == 0 {
		return 0
	}

	textTokens := Tokens(text)
	set := make(map[string]struct{}, len(textTokens))
	for _, t := range textTokens {
		set[t] = struct{}{}
	}

	hits := 0
	for _, t := range queryTokens {
		if _, ok := set[t]; ok {
			hits++
		}
	}

	return float64(hits) / float64(len(queryTokens))
}
