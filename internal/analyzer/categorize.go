package analyzer

import "strings"

// CategorizeSkills buckets extracted skills by taxonomy category. A skill
// belongs to a category when it equals a taxonomy entry or is contained
// in one; the first matching category in taxonomy order wins. The result
// always carries every taxonomy category, empty or not; skills with no
// taxonomy home are left out of all of them.
func (a *Analyzer) CategorizeSkills(skills []string) map[string][]string {
	out := make(map[string][]string, len(a.kb.Taxonomy))
	for _, cat := range a.kb.Taxonomy {
		out[cat.Name] = []string{}
	}
	for _, skill := range skills {
		if cat, ok := a.categoryFor(skill); ok {
			out[cat] = append(out[cat], skill)
		}
	}
	return out
}

func (a *Analyzer) categoryFor(skill string) (string, bool) {
	for _, cat := range a.kb.Taxonomy {
		for _, sub := range cat.Subcategories {
			for _, entry := range sub.Skills {
				if skill == entry || strings.Contains(entry, skill) {
					return cat.Name, true
				}
			}
		}
	}
	return "", false
}
