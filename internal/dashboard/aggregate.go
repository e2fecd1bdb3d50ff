// Package dashboard derives longitudinal analytics from a user's stored
// analysis history. Dashboards are computed on demand from a fresh history
// read and never persisted.
package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/skillbridge/resume-analyzer/internal/knowledge"
	"github.com/skillbridge/resume-analyzer/internal/schemas"
	"github.com/skillbridge/resume-analyzer/internal/types"
)

// ErrNoHistory indicates no stored analyses exist for the identifier.
var ErrNoHistory = errors.New("no analysis history for user")

const (
	topSkillsLimit   = 10
	topSkillsFound   = 5
	recentGapRecords = 5
	maxRecentGaps    = 10
)

// Build aggregates a dashboard from the stored records, which must be
// ordered oldest first. Records whose stored blobs fail to parse or
// validate are skipped with a log line but still count toward the
// denominators, so a corrupt row lowers the averages instead of
// inflating them. Only an empty history is an error.
func Build(identifier string, records []types.HistoryRecord) (*types.Dashboard, error) {
	if len(records) == 0 {
		return nil, ErrNoHistory
	}

	totalAnalyses := len(records)

	var (
		totalSkillsFound int
		totalExperience  int
		totalGaps        int

		series        types.TimeSeries
		domainsPerRow [][]string
		traitsPerRow  [][]string

		domainCounts = newCounter()
		traitCounts  = newCounter()
		skillCounts  = newCounter()
		gapCounts    = newCounter()

		categoryTotals = map[string]int{}
		uniqueSkills   = map[string]struct{}{}
		domainCombos   = map[string]struct{}{}
	)

	for _, rec := range records {
		analysis, summary, err := decodeRecord(rec)
		if err != nil {
			log.Printf("dashboard: skipping history record %d: %v", rec.ID, err)
			continue
		}

		totalSkillsFound += summary.TotalSkillsFound
		series.SkillsPerAnalysis = append(series.SkillsPerAnalysis, summary.TotalSkillsFound)

		totalExperience += summary.YearsExperience
		series.ExperiencePerAnalysis = append(series.ExperiencePerAnalysis, summary.YearsExperience)

		for _, d := range analysis.PredictedDomains {
			domainCounts.add(d)
		}
		domainsPerRow = append(domainsPerRow, analysis.PredictedDomains)
		if len(analysis.PredictedDomains) > 0 {
			combo := append([]string(nil), analysis.PredictedDomains...)
			sort.Strings(combo)
			domainCombos[strings.Join(combo, "|")] = struct{}{}
		}

		for _, tr := range analysis.PersonalityTraits {
			traitCounts.add(tr)
		}
		traitsPerRow = append(traitsPerRow, analysis.PersonalityTraits)

		totalGaps += len(analysis.LearningGaps)
		series.GapsPerAnalysis = append(series.GapsPerAnalysis, len(analysis.LearningGaps))
		for _, gap := range analysis.LearningGaps {
			gapCounts.add(gap.Domain)
		}

		for category, skills := range analysis.CategorizedSkills {
			switch category {
			case knowledge.CategoryTechnical, knowledge.CategorySoft, knowledge.CategoryBusiness:
				categoryTotals[category] += len(skills)
			}
		}

		for _, s := range analysis.ExtractedSkills {
			skillCounts.add(s)
			uniqueSkills[s] = struct{}{}
		}

		series.EducationPerAnalysis = append(series.EducationPerAnalysis, len(analysis.EducationInfo.Degrees))

		if len(analysis.DomainMatchScores) > 0 {
			sum := 0.0
			for _, v := range analysis.DomainMatchScores {
				sum += v
			}
			series.MatchScoresPerAnalysis = append(series.MatchScoresPerAnalysis, round2(sum/float64(len(analysis.DomainMatchScores))))
		} else {
			series.MatchScoresPerAnalysis = append(series.MatchScoresPerAnalysis, 0)
		}
	}

	careerDomains := make([]types.DomainFrequency, 0, domainCounts.len())
	for _, e := range domainCounts.mostCommon(0) {
		careerDomains = append(careerDomains, types.DomainFrequency{
			Domain:     e.key,
			Count:      e.count,
			Percentage: round1(float64(e.count) / float64(totalAnalyses) * 100),
		})
	}

	traitFreqs := make([]types.TraitFrequency, 0, traitCounts.len())
	for _, e := range traitCounts.mostCommon(0) {
		traitFreqs = append(traitFreqs, types.TraitFrequency{
			Trait:      e.key,
			Count:      e.count,
			Percentage: round1(float64(e.count) / float64(totalAnalyses) * 100),
		})
	}

	topSkills := make([]types.SkillFrequency, 0, topSkillsLimit)
	for _, e := range skillCounts.mostCommon(topSkillsLimit) {
		topSkills = append(topSkills, types.SkillFrequency{
			Skill:      e.key,
			Count:      e.count,
			Percentage: round1(float64(e.count) / float64(totalAnalyses) * 100),
		})
	}

	gapInsights := make([]types.GapInsight, 0, gapCounts.len())
	for _, e := range gapCounts.mostCommon(0) {
		gapInsights = append(gapInsights, types.GapInsight{Domain: e.key, Count: e.count})
	}

	avgExperience := round2(float64(totalExperience) / float64(totalAnalyses))
	avgSkills := round2(float64(totalSkillsFound) / float64(totalAnalyses))
	avgGaps := round2(float64(totalGaps) / float64(totalAnalyses))
	avgMatchScore := 0.0
	if len(series.MatchScoresPerAnalysis) > 0 {
		sum := 0.0
		for _, v := range series.MatchScoresPerAnalysis {
			sum += v
		}
		avgMatchScore = round2(sum / float64(len(series.MatchScoresPerAnalysis)))
	}

	skillsTrend := trendOf(series.SkillsPerAnalysis)
	experienceTrend := trendOf(series.ExperiencePerAnalysis)
	consistency := round1(float64(len(domainCombos)) / float64(totalAnalyses) * 100)

	first := records[0].CreatedAt
	last := records[len(records)-1].CreatedAt

	// Dates cover every record, decodable or not, matching the series
	// denominators above.
	dates := make([]time.Time, len(records))
	for i, rec := range records {
		dates[i] = rec.CreatedAt
	}

	return &types.Dashboard{
		UserIdentifier: identifier,
		TimePeriod: types.TimePeriod{
			FirstAnalysis: first,
			LastAnalysis:  last,
			DaysActive:    int(last.Sub(first).Hours() / 24),
		},
		Overview: types.Overview{
			TotalAnalyses:        totalAnalyses,
			TotalSkillsFound:     totalSkillsFound,
			AvgExperience:        avgExperience,
			AvgSkillsPerAnalysis: avgSkills,
			AvgGapsPerAnalysis:   avgGaps,
			AvgMatchScore:        avgMatchScore,
		},
		CareerDomains: careerDomains,
		DetailedAnalytics: types.DetailedAnalytics{
			TimeSeries: series,
			SkillInsights: types.SkillInsights{
				TopSkills: topSkills,
				SkillDistribution: types.HistorySkillDistribution{
					TechnicalSkills:   categoryTotals[knowledge.CategoryTechnical],
					SoftSkills:        categoryTotals[knowledge.CategorySoft],
					BusinessSkills:    categoryTotals[knowledge.CategoryBusiness],
					TotalUniqueSkills: len(uniqueSkills),
				},
				SkillsTrend:          skillsTrend,
				AvgSkillsPerAnalysis: avgSkills,
			},
			DomainInsights: types.DomainInsights{
				CareerDomains:      careerDomains,
				DomainsPerAnalysis: domainsPerRow,
				AvgMatchScore:      avgMatchScore,
			},
			PersonalityInsights: types.PersonalityInsights{
				PersonalityTraits:      traitFreqs,
				PersonalityPerAnalysis: traitsPerRow,
			},
			LearningInsights: types.LearningInsights{
				LearningGapInsights: gapInsights,
				AvgGapsPerAnalysis:  avgGaps,
				TotalGapsIdentified: totalGaps,
			},
			ProgressMetrics: types.ProgressMetrics{
				SkillsTrend:      skillsTrend,
				ExperienceTrend:  experienceTrend,
				ConsistencyScore: consistency,
			},
		},
		ResumeAnalysisTrend: types.ResumeAnalysisTrend{
			Dates:                  dates,
			SkillsPerAnalysis:      series.SkillsPerAnalysis,
			GapsPerAnalysis:        series.GapsPerAnalysis,
			ExperiencePerAnalysis:  series.ExperiencePerAnalysis,
			MatchScoresPerAnalysis: series.MatchScoresPerAnalysis,
		},
		TopSkillsDist: topSkills,
		CareerDomainsTrend: types.CareerDomainsTrend{
			DomainCounts:       careerDomains,
			DomainsPerAnalysis: domainsPerRow,
		},
		TopSkillsFound:      clipSkills(topSkills, topSkillsFound),
		SkillGapsByPriority: gapInsights,
		RecentSkillGaps:     recentGaps(records),
	}, nil
}

// decodeRecord parses and validates one stored row's blobs.
func decodeRecord(rec types.HistoryRecord) (*types.AnalysisResult, *types.Summary, error) {
	if err := schemas.ValidateAnalysis(rec.Analysis); err != nil {
		return nil, nil, err
	}
	var analysis types.AnalysisResult
	if err := json.Unmarshal(rec.Analysis, &analysis); err != nil {
		return nil, nil, err
	}
	var summary types.Summary
	if err := json.Unmarshal(rec.Summary, &summary); err != nil {
		return nil, nil, err
	}
	return &analysis, &summary, nil
}

// trendOf compares the endpoints of a series. A single-point series is
// stable; otherwise anything short of growth reads as decreasing.
func trendOf(series []int) string {
	if len(series) < 2 {
		return types.TrendStable
	}
	if series[len(series)-1] > series[0] {
		return types.TrendIncreasing
	}
	return types.TrendDecreasing
}

// recentGaps collects gaps from the newest records, newest first.
func recentGaps(records []types.HistoryRecord) []types.RecentGap {
	start := len(records) - recentGapRecords
	if start < 0 {
		start = 0
	}

	gaps := []types.RecentGap{}
	for i := len(records) - 1; i >= start; i-- {
		rec := records[i]
		var analysis types.AnalysisResult
		if err := json.Unmarshal(rec.Analysis, &analysis); err != nil {
			continue
		}
		for _, gap := range analysis.LearningGaps {
			gaps = append(gaps, types.RecentGap{
				Domain:        gap.Domain,
				MissingSkills: gap.MissingSkills,
				Priority:      gap.Priority,
				CreatedAt:     rec.CreatedAt,
			})
			if len(gaps) == maxRecentGaps {
				return gaps
			}
		}
	}
	return gaps
}

func clipSkills(skills []types.SkillFrequency, max int) []types.SkillFrequency {
	if len(skills) > max {
		return skills[:max]
	}
	return skills
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
