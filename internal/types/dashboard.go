package types

import "time"

// Trend labels for two-point series comparison.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// DomainFrequency is one row of the career-domain frequency table.
type DomainFrequency struct {
	Domain     string  `json:"domain"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TraitFrequency is one row of the personality-trait frequency table.
type TraitFrequency struct {
	Trait      string  `json:"trait"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SkillFrequency is one row of the top-skills frequency table.
type SkillFrequency struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GapInsight counts learning gaps observed for one domain across history.
type GapInsight struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// TimeSeries holds one scalar value per stored analysis, oldest first.
type TimeSeries struct {
	SkillsPerAnalysis      []int     `json:"skills_per_analysis"`
	ExperiencePerAnalysis  []int     `json:"experience_per_analysis"`
	GapsPerAnalysis        []int     `json:"gaps_per_analysis"`
	EducationPerAnalysis   []int     `json:"education_per_analysis"`
	MatchScoresPerAnalysis []float64 `json:"match_scores_per_analysis"`
}

// HistorySkillDistribution aggregates categorized skill membership over all
// stored analyses.
type HistorySkillDistribution struct {
	TechnicalSkills   int `json:"technical_skills"`
	SoftSkills        int `json:"soft_skills"`
	BusinessSkills    int `json:"business_skills"`
	TotalUniqueSkills int `json:"total_unique_skills"`
}

// SkillInsights groups skill-related derived statistics.
type SkillInsights struct {
	TopSkills            []SkillFrequency         `json:"top_skills"`
	SkillDistribution    HistorySkillDistribution `json:"skill_distribution"`
	SkillsTrend          string                   `json:"skills_trend"`
	AvgSkillsPerAnalysis float64                  `json:"avg_skills_per_analysis"`
}

// DomainInsights groups domain-related derived statistics.
type DomainInsights struct {
	CareerDomains      []DomainFrequency `json:"career_domains"`
	DomainsPerAnalysis [][]string        `json:"domains_per_analysis"`
	AvgMatchScore      float64           `json:"avg_match_score"`
}

// PersonalityInsights groups trait-related derived statistics.
type PersonalityInsights struct {
	PersonalityTraits      []TraitFrequency `json:"personality_traits"`
	PersonalityPerAnalysis [][]string       `json:"personality_per_analysis"`
}

// LearningInsights groups gap-related derived statistics.
type LearningInsights struct {
	LearningGapInsights []GapInsight `json:"learning_gap_insights"`
	AvgGapsPerAnalysis  float64      `json:"avg_gaps_per_analysis"`
	TotalGapsIdentified int          `json:"total_gaps_identified"`
}

// ProgressMetrics holds the trend labels and the consistency score.
type ProgressMetrics struct {
	SkillsTrend      string  `json:"skills_trend"`
	ExperienceTrend  string  `json:"experience_trend"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// DetailedAnalytics nests the full derived statistics of a dashboard.
type DetailedAnalytics struct {
	TimeSeries          TimeSeries          `json:"time_series"`
	SkillInsights       SkillInsights       `json:"skill_insights"`
	DomainInsights      DomainInsights      `json:"domain_insights"`
	PersonalityInsights PersonalityInsights `json:"personality_insights"`
	LearningInsights    LearningInsights    `json:"learning_insights"`
	ProgressMetrics     ProgressMetrics     `json:"progress_metrics"`
}

// ResumeAnalysisTrend pairs each record's date with the per-record series
// for charting. Dates cover every stored record; the series carry one
// point per decodable record.
type ResumeAnalysisTrend struct {
	Dates                  []time.Time `json:"dates"`
	SkillsPerAnalysis      []int       `json:"skills_per_analysis"`
	GapsPerAnalysis        []int       `json:"gaps_per_analysis"`
	ExperiencePerAnalysis  []int       `json:"experience_per_analysis"`
	MatchScoresPerAnalysis []float64   `json:"match_scores_per_analysis"`
}

// CareerDomainsTrend couples the domain frequency table with the raw
// per-record domain lists.
type CareerDomainsTrend struct {
	DomainCounts       []DomainFrequency `json:"domain_counts"`
	DomainsPerAnalysis [][]string        `json:"domains_per_analysis"`
}

// TimePeriod bounds the history window a dashboard was computed over.
type TimePeriod struct {
	FirstAnalysis time.Time `json:"first_analysis"`
	LastAnalysis  time.Time `json:"last_analysis"`
	DaysActive    int       `json:"days_active"`
}

// Overview holds the headline averages for a dashboard.
type Overview struct {
	TotalAnalyses        int     `json:"total_analyses"`
	TotalSkillsFound     int     `json:"total_skills_found"`
	AvgExperience        float64 `json:"avg_experience"`
	AvgSkillsPerAnalysis float64 `json:"avg_skills_per_analysis"`
	AvgGapsPerAnalysis   float64 `json:"avg_gaps_per_analysis"`
	AvgMatchScore        float64 `json:"avg_match_score"`
}

// RecentGap is a learning gap from one of the most recent analyses.
type RecentGap struct {
	Domain        string    `json:"domain"`
	MissingSkills []string  `json:"missing_skills"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

// Dashboard is the longitudinal analytics view for one identifier. It is
// derived on every request from a fresh read of the stored history and is
// never itself persisted.
type Dashboard struct {
	UserIdentifier      string            `json:"user_identifier"`
	TimePeriod          TimePeriod        `json:"time_period"`
	Overview            Overview          `json:"overview"`
	CareerDomains       []DomainFrequency   `json:"career_domains"`
	DetailedAnalytics   DetailedAnalytics   `json:"detailed_analytics"`
	ResumeAnalysisTrend ResumeAnalysisTrend `json:"resume_analysis_trend"`
	TopSkillsDist       []SkillFrequency    `json:"top_skills_distribution"`
	CareerDomainsTrend  CareerDomainsTrend  `json:"career_domains_trend"`
	TopSkillsFound      []SkillFrequency    `json:"top_skills_found"`
	SkillGapsByPriority []GapInsight        `json:"skill_gaps_by_priority"`
	RecentSkillGaps     []RecentGap         `json:"recent_skill_gaps"`
}
