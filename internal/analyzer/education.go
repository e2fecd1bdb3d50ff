package analyzer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/skillbridge/resume-analyzer/internal/types"
)

type educationKind int

const (
	eduCredential educationKind = iota
	eduInstitution
	eduField
	eduGPA
	eduGradYear
)

// educationPatterns capture the recognizable education statements in a
// resume. Credential and institution matches are re-classified by their
// wording; GPA and graduation year feed dedicated fields.
var educationPatterns = []struct {
	kind educationKind
	re   *regexp.Regexp
}{
	{eduCredential, regexp.MustCompile(`\b(?:bachelor|master|phd|doctorate|associate|diploma|certificate)\s+(?:of|in|degree)?\s*[^,.]+`)},
	{eduInstitution, regexp.MustCompile(`\b(?:university|college|institute|school)\s+of\s+[^,.]+`)},
	{eduField, regexp.MustCompile(`\b(?:computer science|engineering|business|marketing|finance|healthcare|education)\s+(?:degree|major|field)`)},
	{eduGPA, regexp.MustCompile(`\b(?:gpa|grade point average)\s*[:\-]?\s*(\d+\.?\d*)`)},
	{eduGradYear, regexp.MustCompile(`\b(?:graduated|completed|earned)\s+(?:in|from|at)\s+(\d{4})`)},
}

var (
	institutionWords = []string{"university", "college", "institute"}
	credentialWords  = []string{"bachelor", "master", "phd", "doctorate", "associate"}
)

// ExtractEducation pulls degrees, institutions, fields of study,
// graduation years, and GPA from the document text. First GPA match wins;
// list fields are deduplicated and sorted.
func ExtractEducation(text string) types.EducationInfo {
	lowered := strings.ToLower(text)

	info := types.EducationInfo{
		Degrees:         []string{},
		Institutions:    []string{},
		FieldsOfStudy:   []string{},
		GraduationYears: []int{},
	}

	for _, p := range educationPatterns {
		for _, m := range p.re.FindAllStringSubmatch(lowered, -1) {
			switch p.kind {
			case eduGPA:
				if info.GPA != nil {
					continue
				}
				if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
					info.GPA = &gpa
				}
			case eduGradYear:
				if year, err := strconv.Atoi(m[1]); err == nil {
					info.GraduationYears = append(info.GraduationYears, year)
				}
			default:
				info = classifyEducationMatch(info, strings.TrimSpace(m[0]))
			}
		}
	}

	info.Degrees = dedupeSorted(info.Degrees)
	info.Institutions = dedupeSorted(info.Institutions)
	info.FieldsOfStudy = dedupeSorted(info.FieldsOfStudy)
	info.GraduationYears = dedupeSortedInts(info.GraduationYears)
	return info
}

func classifyEducationMatch(info types.EducationInfo, match string) types.EducationInfo {
	for _, w := range institutionWords {
		if strings.Contains(match, w) {
			info.Institutions = append(info.Institutions, match)
			return info
		}
	}
	for _, w := range credentialWords {
		if strings.Contains(match, w) {
			info.Degrees = append(info.Degrees, match)
			return info
		}
	}
	info.FieldsOfStudy = append(info.FieldsOfStudy, match)
	return info
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func dedupeSortedInts(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
