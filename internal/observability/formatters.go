// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/skillbridge/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of one analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills found:   %d\n", result.Summary.TotalSkillsFound))
	sb.WriteString(fmt.Sprintf("Experience:     %d years\n", result.ExperienceYears.TotalYears))
	sb.WriteString(fmt.Sprintf("Top domain:     %s (%.1f%%)\n", result.Summary.TopDomain, result.Summary.TopDomainMatch))
	sb.WriteString("\n")

	if len(result.ExtractedSkills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(result.ExtractedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.ExtractedSkills[i]))
		}
		if len(result.ExtractedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ExtractedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.LearningGaps) > 0 {
		sb.WriteString("Learning gaps:\n")
		count := min(len(result.LearningGaps), 3)
		for i := 0; i < count; i++ {
			gap := result.LearningGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s): %s\n", gap.Domain, gap.Priority,
				strings.Join(gap.MissingSkills, ", ")))
		}
		if len(result.LearningGaps) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.LearningGaps)-3))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs the headline numbers of a user dashboard.
func (p *Printer) PrintDashboard(dash *types.Dashboard) {
	if dash == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("User:            %s\n", dash.UserIdentifier))
	sb.WriteString(fmt.Sprintf("Analyses:        %d\n", dash.Overview.TotalAnalyses))
	sb.WriteString(fmt.Sprintf("Avg skills:      %.2f\n", dash.Overview.AvgSkillsPerAnalysis))
	sb.WriteString(fmt.Sprintf("Avg experience:  %.2f years\n", dash.Overview.AvgExperience))
	sb.WriteString(fmt.Sprintf("Skills trend:    %s\n", dash.DetailedAnalytics.ProgressMetrics.SkillsTrend))

	if len(dash.CareerDomains) > 0 {
		sb.WriteString("\nTop domains:\n")
		count := min(len(dash.CareerDomains), 3)
		for i := 0; i < count; i++ {
			d := dash.CareerDomains[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d, %.1f%%)\n", d.Domain, d.Count, d.Percentage))
		}
	}

	p.printBox("USER DASHBOARD", strings.TrimSuffix(sb.String(), "\n"))
}
