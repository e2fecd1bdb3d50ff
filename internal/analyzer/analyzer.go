// Package analyzer implements the resume analysis pipeline: multi-strategy
// skill extraction, experience estimation, domain prediction, gap detection,
// skill categorization, trait inference, and recommendation tiering.
//
// Each analysis is a single-shot, synchronous computation over one document.
// The pipeline holds no mutable shared state; the knowledge base it scores
// against is read-only, so analyzers are safe for concurrent use.
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/nlp"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

// ErrEmptyDocument indicates the document text was empty or whitespace-only.
// Empty input is a usage error; no analysis is attempted.
var ErrEmptyDocument = errors.New("document text is empty")

// Analyzer runs the analysis pipeline against a shared knowledge base.
type Analyzer struct {
	kb     *knowledge.Base
	tagger nlp.Tagger
}

// New creates an Analyzer scoring against kb and tokenizing with tagger.
func New(kb *knowledge.Base, tagger nlp.Tagger) *Analyzer {
	return &Analyzer{kb: kb, tagger: tagger}
}

// KnowledgeBase exposes the base the analyzer scores against.
func (a *Analyzer) KnowledgeBase() *knowledge.Base {
	return a.kb
}

// Analyze runs the full pipeline over one document and assembles the
// immutable result.
func (a *Analyzer) Analyze(text string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	skills, err := a.ExtractSkills(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skills: %w", err)
	}

	keywords, err := a.ExtractKeywords(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract keywords: %w", err)
	}

	experience := ExtractExperienceYears(text)
	domains := a.PredictDomains(text, skills)
	gaps := a.AnalyzeGaps(skills, domains)
	traits := a.InferPersonality(text)
	categorized := a.CategorizeSkills(skills)
	recommendations := a.GenerateRecommendations(domains, experience.TotalYears)
	education := ExtractEducation(text)

	matchScores := make(map[string]float64, len(domains))
	for _, d := range domains {
		matchScores[d] = a.MatchScore(skills, d)
	}

	result := &types.AnalysisResult{
		ExtractedSkills:   skills,
		CategorizedSkills: categorized,
		ExperienceYears:   experience,
		Keywords:          keywords,
		PredictedDomains:  domains,
		DomainMatchScores: matchScores,
		LearningGaps:      gaps,
		PersonalityTraits: traits,
		Recommendations:   recommendations,
		EducationInfo:     education,
	}
	result.Summary = buildSummary(result)

	return result, nil
}

// buildSummary derives the scalar rollup stored alongside the full result.
func buildSummary(r *types.AnalysisResult) types.Summary {
	topDomain := "Unknown"
	topMatch := 0.0
	if len(r.PredictedDomains) > 0 {
		topDomain = r.PredictedDomains[0]
		topMatch = r.DomainMatchScores[topDomain]
	}

	categories := make(map[string]int, len(r.CategorizedSkills))
	for name, skills := range r.CategorizedSkills {
		categories[name] = len(skills)
	}

	return types.Summary{
		TotalSkillsFound:       len(r.ExtractedSkills),
		YearsExperience:        r.ExperienceYears.TotalYears,
		TopDomain:              topDomain,
		TopDomainMatch:         topMatch,
		GapsIdentified:         len(r.LearningGaps),
		PersonalityTraitsCount: len(r.PersonalityTraits),
		EducationLevel:         len(r.EducationInfo.Degrees),
		SkillCategories:        categories,
	}
}
