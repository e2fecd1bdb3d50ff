package analyzer

import (
	"fmt"

	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

const (
	maxStrengthScore   = 100
	strengthPerSkill   = 10
	recommendedMinimum = 3
)

// SkillAnalysis produces the skill-focused report: extraction,
// categorization, distribution, per-category strength scores, and thin
// categories flagged as development areas.
func (a *Analyzer) SkillAnalysis(text string) (*types.SkillReport, error) {
	skills, err := a.ExtractSkills(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skills: %w", err)
	}
	categorized := a.CategorizeSkills(skills)

	distribution := types.SkillDistribution{
		TotalSkills:     len(skills),
		TechnicalSkills: len(categorized[knowledge.CategoryTechnical]),
		SoftSkills:      len(categorized[knowledge.CategorySoft]),
		BusinessSkills:  len(categorized[knowledge.CategoryBusiness]),
	}
	distribution.Uncategorized = distribution.TotalSkills -
		distribution.TechnicalSkills - distribution.SoftSkills - distribution.BusinessSkills

	strength := make(map[string]int)
	var areas []types.DevelopmentArea
	for _, cat := range a.kb.Taxonomy {
		count := len(categorized[cat.Name])
		if count > 0 {
			score := count * strengthPerSkill
			if score > maxStrengthScore {
				score = maxStrengthScore
			}
			strength[cat.Name] = score
		}
		if count < recommendedMinimum {
			priority := "Medium"
			if cat.Name == knowledge.CategoryTechnical {
				priority = "High"
			}
			areas = append(areas, types.DevelopmentArea{
				Category:           cat.Name,
				CurrentCount:       count,
				RecommendedMinimum: recommendedMinimum,
				Priority:           priority,
			})
		}
	}

	return &types.SkillReport{
		Skills:            skills,
		CategorizedSkills: categorized,
		SkillDistribution: distribution,
		SkillStrength:     strength,
		DevelopmentAreas:  areas,
	}, nil
}
