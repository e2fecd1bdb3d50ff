package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skillbridge/resume-analyzer/internal/types"
)

// nowFunc is swapped in tests to pin the current year.
var nowFunc = time.Now

// Explicit experience statements, e.g. "7 years of experience",
// "experience of 3 years", "5 years in the field".
var explicitExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp)\s*(?:of\s+)?(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:in\s+)?(?:the\s+)?(?:field|industry|role)`),
}

// Date ranges used as a fallback when no explicit statement appears,
// e.g. "2018 - 2022" or "2019 - present".
var (
	yearRangePattern  = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|\bpresent\b)`)
	shortRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{2})\b`)
)

// ExtractExperienceYears estimates total years of experience from the
// document text. Explicit "N years" statements take precedence; every
// match contributes to the total, so repeated mentions accumulate. When
// no explicit statement exists, date ranges are summed instead. Spans
// outside [0, 50] are treated as noise and dropped.
func ExtractExperienceYears(text string) types.ExperienceYears {
	lowered := strings.ToLower(text)

	total := 0
	mentions := []int{}
	for _, pattern := range explicitExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lowered, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			total += years
			mentions = append(mentions, years)
		}
	}
	if total > 0 {
		return types.ExperienceYears{TotalYears: total, Mentions: mentions}
	}

	currentYear := nowFunc().Year()
	for _, m := range yearRangePattern.FindAllStringSubmatch(lowered, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "present" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if span := end - start; span >= 0 && span <= 50 {
			total += span
			mentions = append(mentions, span)
		}
	}
	for _, m := range shortRangePattern.FindAllStringSubmatch(lowered, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		suffix, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		end := (start/100)*100 + suffix
		if span := end - start; span >= 0 && span <= 50 {
			total += span
			mentions = append(mentions, span)
		}
	}

	return types.ExperienceYears{TotalYears: total, Mentions: mentions}
}
