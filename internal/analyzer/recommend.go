package analyzer

import (
	"fmt"

	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

const (
	maxRecommendedDomains = 2
	maxTierResources      = 3
	maxNextTierResources  = 2
)

// SkillLevelForYears maps total experience to a learning tier.
func SkillLevelForYears(years int) knowledge.Tier {
	switch {
	case years < 2:
		return knowledge.TierBeginner
	case years < 5:
		return knowledge.TierIntermediate
	default:
		return knowledge.TierAdvanced
	}
}

// GenerateRecommendations builds tiered learning recommendations for the
// top predicted domains. For each covered domain it recommends resources
// at the candidate's current tier (High priority for the top domain,
// Medium otherwise) plus a shorter next-tier preview. A general
// development block is always appended last.
func (a *Analyzer) GenerateRecommendations(domains []string, years int) []types.Recommendation {
	tier := SkillLevelForYears(years)

	var recs []types.Recommendation
	for i, domain := range domains {
		if i >= maxRecommendedDomains {
			break
		}

		resources, ok := a.kb.DomainResources(domain, tier)
		if ok {
			priority := "Medium"
			if i == 0 {
				priority = "High"
			}
			recs = append(recs, types.Recommendation{
				Domain:     domain,
				SkillLevel: string(tier),
				Resources:  clip(resources, maxTierResources),
				Priority:   priority,
			})
		}

		next := tier.Next()
		if next == tier {
			continue
		}
		if nextResources, ok := a.kb.DomainResources(domain, next); ok {
			recs = append(recs, types.Recommendation{
				Domain:     domain,
				SkillLevel: string(next),
				Resources:  clip(nextResources, maxNextTierResources),
				Priority:   "Medium",
				Note:       fmt.Sprintf("Next level recommendations for %s", domain),
			})
		}
	}

	recs = append(recs, types.Recommendation{
		Domain:     "General Development",
		SkillLevel: "All Levels",
		Resources:  a.kb.GeneralResources,
		Priority:   "Low",
		Note:       "General professional development resources",
	})
	return recs
}

func clip(resources []string, max int) []string {
	if len(resources) > max {
		return resources[:max]
	}
	return resources
}
