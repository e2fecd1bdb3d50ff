package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/resume-analyzer/internal/knowledge"
)

func TestSkillAnalysis(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.SkillAnalysis("python and sql developer with leadership experience")
	require.NoError(t, err)

	assert.Equal(t, len(report.Skills), report.SkillDistribution.TotalSkills)
	total := report.SkillDistribution.TechnicalSkills +
		report.SkillDistribution.SoftSkills +
		report.SkillDistribution.BusinessSkills +
		report.SkillDistribution.Uncategorized
	assert.Equal(t, report.SkillDistribution.TotalSkills, total)

	// Strength is ten points per skill, capped at one hundred.
	for cat, score := range report.SkillStrength {
		want := len(report.CategorizedSkills[cat]) * 10
		if want > 100 {
			want = 100
		}
		assert.Equal(t, want, score)
	}
}

func TestSkillAnalysis_ThinCategoriesFlagged(t *testing.T) {
	a := newTestAnalyzer()

	// One technical skill only: every category is under the minimum.
	report, err := a.SkillAnalysis("python")
	require.NoError(t, err)

	require.NotEmpty(t, report.DevelopmentAreas)
	byCategory := map[string]string{}
	for _, area := range report.DevelopmentAreas {
		assert.Equal(t, 3, area.RecommendedMinimum)
		byCategory[area.Category] = area.Priority
	}
	assert.Equal(t, "High", byCategory[knowledge.CategoryTechnical])
	assert.Equal(t, "Medium", byCategory[knowledge.CategorySoft])
	assert.Equal(t, "Medium", byCategory[knowledge.CategoryBusiness])
}

func TestSkillAnalysis_EmptyText(t *testing.T) {
	a := newTestAnalyzer()

	report, err := a.SkillAnalysis("qqq zzz")
	require.NoError(t, err)
	assert.Zero(t, report.SkillDistribution.TotalSkills)
}
