// Package types defines the shared data shapes produced by the analysis
// pipeline and consumed by the store, the dashboard aggregator, and the API.
package types

import (
	"encoding/json"
	"time"
)

// ExperienceYears holds the estimated professional experience extracted from
// a document. Mentions lists each explicit "N years" phrase individually;
// TotalYears is their sum, or the date-range fallback estimate when no
// explicit mention exists.
type ExperienceYears struct {
	TotalYears int   `json:"total_years"`
	Mentions   []int `json:"mentions"`
}

// LearningGap describes reference skills for a predicted career domain that
// the analyzed document does not evidence.
type LearningGap struct {
	Domain        string   `json:"domain"`
	MissingSkills []string `json:"missing_skills"`
	Priority      string   `json:"priority"`
}

// Recommendation is one tiered set of learning resources for a domain.
type Recommendation struct {
	Domain     string   `json:"domain"`
	SkillLevel string   `json:"skill_level"`
	Resources  []string `json:"resources"`
	Priority   string   `json:"priority"`
	Note       string   `json:"note,omitempty"`
}

// EducationInfo holds education facts recognized by the pattern table.
type EducationInfo struct {
	Degrees         []string `json:"degrees"`
	Institutions    []string `json:"institutions"`
	FieldsOfStudy   []string `json:"fields_of_study"`
	GraduationYears []int    `json:"graduation_years"`
	GPA             *float64 `json:"gpa"`
}

// Summary is the scalar rollup of one analysis, stored alongside the full
// result and used by the history endpoints without parsing the full blob.
type Summary struct {
	TotalSkillsFound       int            `json:"total_skills_found"`
	YearsExperience        int            `json:"years_experience"`
	TopDomain              string         `json:"top_domain"`
	TopDomainMatch         float64        `json:"top_domain_match"`
	GapsIdentified         int            `json:"gaps_identified"`
	PersonalityTraitsCount int            `json:"personality_traits_count"`
	EducationLevel         int            `json:"education_level"`
	SkillCategories        map[string]int `json:"skill_categories"`
}

// AnalysisResult is the complete structured profile produced from one resume
// document. It is immutable once built and persisted verbatim.
type AnalysisResult struct {
	ExtractedSkills   []string            `json:"extracted_skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	ExperienceYears   ExperienceYears     `json:"experience_years"`
	Keywords          []string            `json:"keywords"`
	PredictedDomains  []string            `json:"predicted_career_domains"`
	DomainMatchScores map[string]float64  `json:"domain_match_scores"`
	LearningGaps      []LearningGap       `json:"learning_gaps"`
	PersonalityTraits []string            `json:"personality_traits"`
	Recommendations   []Recommendation    `json:"learning_recommendations"`
	EducationInfo     EducationInfo       `json:"education_info"`
	Summary           Summary             `json:"analysis_summary"`
}

// SkillDistribution summarizes how extracted skills split across categories.
type SkillDistribution struct {
	TotalSkills     int `json:"total_skills"`
	TechnicalSkills int `json:"technical_skills"`
	SoftSkills      int `json:"soft_skills"`
	BusinessSkills  int `json:"business_skills"`
	Uncategorized   int `json:"uncategorized"`
}

// DevelopmentArea flags a skill category with thin coverage.
type DevelopmentArea struct {
	Category           string `json:"category"`
	CurrentCount       int    `json:"current_count"`
	RecommendedMinimum int    `json:"recommended_minimum"`
	Priority           string `json:"priority"`
}

// SkillReport is the detailed skill-only analysis returned by the
// skill-analysis endpoint.
type SkillReport struct {
	Skills            []string            `json:"skills"`
	CategorizedSkills map[string][]string `json:"categorized_skills"`
	SkillDistribution SkillDistribution   `json:"skill_distribution"`
	SkillStrength     map[string]int      `json:"skill_strength"`
	DevelopmentAreas  []DevelopmentArea   `json:"development_areas"`
}

// HistoryRecord is one persisted analysis as read back from the store. The
// analysis and summary payloads are opaque structured blobs; only the
// aggregator looks inside them.
type HistoryRecord struct {
	ID               int64           `json:"id"`
	UserIdentifier   string          `json:"user_identifier"`
	Analysis         json.RawMessage `json:"analysis_data,omitempty"`
	Summary          json.RawMessage `json:"analysis_summary"`
	ProcessingTimeMs float64         `json:"processing_time_ms"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UserStats summarizes all stored analyses for one identifier.
type UserStats struct {
	TotalAnalyses     int       `json:"total_analyses"`
	AvgProcessingTime float64   `json:"avg_processing_time"`
	FirstAnalysis     time.Time `json:"first_analysis"`
	LastAnalysis      time.Time `json:"last_analysis"`
}
