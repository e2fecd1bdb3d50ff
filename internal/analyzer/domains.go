package analyzer

import (
	"math"
	"sort"
	"strings"
)

const maxPredictedDomains = 3

// PredictDomains scores every career domain against the document and the
// extracted skills, and returns the top-scoring domain names. A domain
// keyword counts once when it appears anywhere in the text, and twice
// more when it matches an extracted skill exactly. Domains with zero
// score are dropped; ties keep declaration order.
func (a *Analyzer) PredictDomains(text string, skills []string) []string {
	lowered := strings.ToLower(text)
	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[s] = struct{}{}
	}

	type scored struct {
		name  string
		score int
	}
	var ranked []scored
	for _, d := range a.kb.Domains {
		score := 0
		for _, kw := range d.Keywords {
			if strings.Contains(lowered, kw) {
				score++
			}
			if _, ok := skillSet[kw]; ok {
				score += 2
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{name: d.Name, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	n := len(ranked)
	if n > maxPredictedDomains {
		n = maxPredictedDomains
	}
	names := make([]string, 0, n)
	for _, r := range ranked[:n] {
		names = append(names, r.name)
	}
	return names
}

// MatchScore reports what share of a domain's reference skills the
// candidate already has, as a percentage rounded to one decimal. Matching
// here is exact set intersection; a domain with no reference skills
// scores zero.
func (a *Analyzer) MatchScore(skills []string, domain string) float64 {
	ref, ok := a.kb.DomainKeywords(domain)
	if !ok || len(ref) == 0 {
		return 0
	}

	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[s] = struct{}{}
	}

	matched := 0
	for _, kw := range ref {
		if _, ok := skillSet[kw]; ok {
			matched++
		}
	}
	return round1(float64(matched) / float64(len(ref)) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
