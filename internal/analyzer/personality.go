package analyzer

import (
	"sort"
	"strings"
)

const maxTraits = 3

// InferPersonality surfaces the traits evidenced by the document. Each
// indicator phrase counts once no matter how often it repeats, so a
// trait's score is the number of distinct indicators present. A trait
// needs at least one indicator to qualify; the top three by score are
// returned, ties in declaration order.
func (a *Analyzer) InferPersonality(text string) []string {
	lowered := strings.ToLower(text)

	type scored struct {
		name string
		hits int
	}
	var ranked []scored
	for _, trait := range a.kb.Traits {
		hits := 0
		for _, indicator := range trait.Indicators {
			if strings.Contains(lowered, indicator) {
				hits++
			}
		}
		if hits > 0 {
			ranked = append(ranked, scored{name: trait.Name, hits: hits})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].hits > ranked[j].hits })

	n := len(ranked)
	if n > maxTraits {
		n = maxTraits
	}
	traits := make([]string, 0, n)
	for _, r := range ranked[:n] {
		traits = append(traits, r.name)
	}
	return traits
}
