package analyzer

import (
	"sort"
	"strings"

	"github.com/skillbridge/resume-analyzer/internal/types"
)

const maxMissingSkills = 5

// AnalyzeGaps compares the candidate's skills against each predicted
// domain's reference list and reports what is missing. Missing skills are
// ranked by how many domains reference them, so broadly useful skills
// surface first; at most maxMissingSkills appear per gap. Priority is
// High when more than five reference skills are missing in total.
func (a *Analyzer) AnalyzeGaps(skills []string, domains []string) []types.LearningGap {
	gaps := make([]types.LearningGap, 0, len(domains))
	for _, domain := range domains {
		ref, ok := a.kb.DomainKeywords(domain)
		if !ok {
			continue
		}

		_, missing := matchDomainSkills(skills, ref)
		if len(missing) == 0 {
			continue
		}

		priority := "Medium"
		if len(missing) > maxMissingSkills {
			priority = "High"
		}

		sort.SliceStable(missing, func(i, j int) bool {
			return a.kb.Importance(missing[i]) > a.kb.Importance(missing[j])
		})
		if len(missing) > maxMissingSkills {
			missing = missing[:maxMissingSkills]
		}

		gaps = append(gaps, types.LearningGap{
			Domain:        domain,
			MissingSkills: missing,
			Priority:      priority,
		})
	}
	return gaps
}

// matchDomainSkills splits a domain's reference skills into those the
// candidate covers and those they lack.
func matchDomainSkills(skills []string, ref []string) (matched, missing []string) {
	for _, want := range ref {
		if hasMatchingSkill(skills, want) {
			matched = append(matched, want)
		} else {
			missing = append(missing, want)
		}
	}
	return matched, missing
}

// hasMatchingSkill reports whether any candidate skill covers the
// reference skill. Exact matches, substring containment in either
// direction, and common spelling variations (spaces removed, hyphens as
// spaces) all count.
func hasMatchingSkill(skills []string, ref string) bool {
	noSpace := strings.ReplaceAll(ref, " ", "")
	hyphenless := strings.ReplaceAll(ref, "-", " ")
	for _, s := range skills {
		if s == ref {
			return true
		}
		if strings.Contains(s, ref) || strings.Contains(ref, s) {
			return true
		}
		if s == noSpace || s == hyphenless {
			return true
		}
	}
	return false
}
