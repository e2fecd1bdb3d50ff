package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperienceYears_Explicit(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantTotal    int
		wantMentions []int
	}{
		{
			name:         "years of experience",
			text:         "7 years of experience in software",
			wantTotal:    7,
			wantMentions: []int{7},
		},
		{
			name:         "experience of years",
			text:         "experience of 3 years",
			wantTotal:    3,
			wantMentions: []int{3},
		},
		{
			name:         "years in the field",
			text:         "5 years in the field",
			wantTotal:    5,
			wantMentions: []int{5},
		},
		{
			name:         "years in industry",
			text:         "over 6 years in the industry",
			wantTotal:    6,
			wantMentions: []int{6},
		},
		{
			name:         "bare duration is not an explicit mention",
			text:         "worked 4 years with enterprise clients",
			wantTotal:    0,
			wantMentions: []int{},
		},
		{
			name:         "repeated mentions accumulate",
			text:         "4 years of experience at Acme. experience of 2 years.",
			wantTotal:    6,
			wantMentions: []int{4, 2},
		},
		{
			name:         "no mentions",
			text:         "software engineer",
			wantTotal:    0,
			wantMentions: []int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExperienceYears(tt.text)
			assert.Equal(t, tt.wantTotal, got.TotalYears)
			assert.Equal(t, tt.wantMentions, got.Mentions)
		})
	}
}

func TestExtractExperienceYears_DateRangeFallback(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	tests := []struct {
		name      string
		text      string
		wantTotal int
	}{
		{name: "closed range", text: "Acme Corp, 2018 - 2022", wantTotal: 4},
		{name: "open range", text: "Beta Inc, 2020 - present", wantTotal: 5},
		{name: "multiple ranges sum", text: "2015 - 2018, then 2019 - 2022", wantTotal: 6},
		{name: "implausible span dropped", text: "1800 - 2022", wantTotal: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExperienceYears(tt.text)
			assert.Equal(t, tt.wantTotal, got.TotalYears)
		})
	}
}

func TestExtractExperienceYears_ExplicitWinsOverRanges(t *testing.T) {
	got := ExtractExperienceYears("3 years of experience. Acme, 2010 - 2022.")
	assert.Equal(t, 3, got.TotalYears)
}
