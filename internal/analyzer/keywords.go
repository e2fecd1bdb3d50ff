package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const maxKeywords = 20

// ExtractKeywords returns the most frequent content words in the document,
// ranked by occurrence count. Ties keep first-appearance order. At most
// maxKeywords entries are returned.
func (a *Analyzer) ExtractKeywords(text string) ([]string, error) {
	tokens, err := a.tagger.Tokenize(strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize document: %w", err)
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, t := range tokens {
		if !t.IsContentWord() || len(t.Text) <= 3 || allDigits(t.Text) {
			continue
		}
		if _, ok := counts[t.Text]; !ok {
			firstSeen[t.Text] = order
			order++
		}
		counts[t.Text]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
