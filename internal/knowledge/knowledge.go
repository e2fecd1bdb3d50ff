// Package knowledge holds the static reference data the analysis pipeline
// scores against: career domains with keyword sets, a skills taxonomy,
// personality-trait indicators, and tiered learning-resource catalogs.
//
// The data is assembled once into an immutable Base. Components share it by
// reference and must not mutate it; missing entries (a domain without
// resources, an unknown domain name) are treated as "no data", never as
// errors.
package knowledge

import "sync"

// Tier is a skill level derived from years of experience.
type Tier string

// Skill tiers, ordered Beginner < Intermediate < Advanced.
const (
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
)

// Next returns the tier above t, capped at Advanced.
func (t Tier) Next() Tier {
	switch t {
	case TierBeginner:
		return TierIntermediate
	case TierIntermediate:
		return TierAdvanced
	default:
		return TierAdvanced
	}
}

// Domain is a named career field with its reference keyword/skill set.
type Domain struct {
	Name     string
	Keywords []string
}

// Subcategory is a named list of skills within a taxonomy category.
type Subcategory struct {
	Name   string
	Skills []string
}

// Category is a top-level taxonomy bucket (Technical/Soft/Business).
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Trait is a personality trait with its indicator words.
type Trait struct {
	Name       string
	Indicators []string
}

// Base is the process-wide knowledge base. Construct it with New (or share
// the Default instance); all lookups are safe for unsynchronized concurrent
// reads.
type Base struct {
	Domains          []Domain
	Taxonomy         []Category
	Traits           []Trait
	Resources        map[string]map[Tier][]string
	GeneralResources []string

	commonSkills map[string]struct{}
	domainCounts map[string]int
}

var (
	defaultBase *Base
	defaultOnce sync.Once
)

// Default returns the shared knowledge base built from the static tables.
func Default() *Base {
	defaultOnce.Do(func() {
		defaultBase = New()
	})
	return defaultBase
}

// New assembles a knowledge base from the static tables and precomputes the
// flattened common-skills vocabulary and per-skill domain counts.
func New() *Base {
	b := &Base{
		Domains:          careerDomains,
		Taxonomy:         skillsTaxonomy,
		Traits:           personalityTraits,
		Resources:        learningResources,
		GeneralResources: generalResources,
		commonSkills:     make(map[string]struct{}),
		domainCounts:     make(map[string]int),
	}

	for _, d := range b.Domains {
		seen := make(map[string]struct{}, len(d.Keywords))
		for _, kw := range d.Keywords {
			b.commonSkills[kw] = struct{}{}
			if _, dup := seen[kw]; !dup {
				seen[kw] = struct{}{}
				b.domainCounts[kw]++
			}
		}
	}
	for _, c := range b.Taxonomy {
		for _, sub := range c.Subcategories {
			for _, s := range sub.Skills {
				b.commonSkills[s] = struct{}{}
			}
		}
	}
	for _, s := range baseSkills {
		b.commonSkills[s] = struct{}{}
	}

	return b
}

// CommonSkills returns the flattened, deduplicated skill vocabulary used for
// direct string matching. Callers must treat the map as read-only.
func (b *Base) CommonSkills() map[string]struct{} {
	return b.commonSkills
}

// IsCommonSkill reports whether s belongs to the common skills vocabulary.
func (b *Base) IsCommonSkill(s string) bool {
	_, ok := b.commonSkills[s]
	return ok
}

// Importance returns the number of distinct domains whose keyword set lists
// the skill. Cross-domain skills rank higher in gap analysis.
func (b *Base) Importance(skill string) int {
	return b.domainCounts[skill]
}

// DomainKeywords returns the reference keyword set for a domain, or false
// when the domain is unknown.
func (b *Base) DomainKeywords(name string) ([]string, bool) {
	for _, d := range b.Domains {
		if d.Name == name {
			return d.Keywords, true
		}
	}
	return nil, false
}

// DomainResources returns the resource list for a domain at a tier, or false
// when no catalog exists for that combination.
func (b *Base) DomainResources(name string, tier Tier) ([]string, bool) {
	catalog, ok := b.Resources[name]
	if !ok {
		return nil, false
	}
	r, ok := catalog[tier]
	return r, ok
}
