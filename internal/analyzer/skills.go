package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skillbridge/resume-analyzer/internal/nlp"
)

// Section headers that introduce a skills block, and the headers that end one.
var (
	skillSectionHeaders = []string{"skills", "technical skills", "technologies", "tools"}
	skillSectionStops   = []string{"experience", "education", "projects"}
)

// ExtractSkills finds every known skill mentioned in text. Four strategies
// run over the lowered text and their hits are unioned:
//
//  1. substring scan of the full vocabulary
//  2. single-token scan of noun-like tokens
//  3. adjacent-token bigram scan
//  4. substring scan restricted to the skills section, when one exists
//
// The result is deduplicated and sorted for deterministic output.
func (a *Analyzer) ExtractSkills(text string) ([]string, error) {
	lowered := strings.ToLower(text)
	found := make(map[string]struct{})

	for skill := range a.kb.CommonSkills() {
		if strings.Contains(lowered, skill) {
			found[skill] = struct{}{}
		}
	}

	tokens, err := a.tagger.Tokenize(lowered)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize document: %w", err)
	}

	for _, t := range tokens {
		if !isSkillCandidate(t) {
			continue
		}
		if a.kb.IsCommonSkill(t.Text) {
			found[t.Text] = struct{}{}
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		bigram := tokens[i].Text + " " + tokens[i+1].Text
		if a.kb.IsCommonSkill(bigram) {
			found[bigram] = struct{}{}
		}
	}

	if section, ok := skillsSection(lowered); ok {
		for skill := range a.kb.CommonSkills() {
			if strings.Contains(section, skill) {
				found[skill] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills, nil
}

func isSkillCandidate(t nlp.Token) bool {
	if t.POS != nlp.POSNoun && t.POS != nlp.POSProperNoun {
		return false
	}
	return !t.Stop && len(t.Text) > 2
}

// skillsSection returns the body of the earliest skills-like section in the
// lowered text. The body runs from the header to the earliest subsequent
// stop header, or to the end of the text when none follows.
func skillsSection(lowered string) (string, bool) {
	start := -1
	for _, header := range skillSectionHeaders {
		if idx := strings.Index(lowered, header); idx >= 0 && (start == -1 || idx < start) {
			start = idx
		}
	}
	if start == -1 {
		return "", false
	}

	body := lowered[start:]
	end := len(body)
	for _, stop := range skillSectionStops {
		// Skip the header itself when searching for the section end.
		if idx := strings.Index(body[1:], stop); idx >= 0 && idx+1 < end {
			end = idx + 1
		}
	}
	return body[:end], true
}
