package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_RanksByFrequency(t *testing.T) {
	a := newTestAnalyzer()

	keywords, err := a.ExtractKeywords("kubernetes kubernetes kubernetes terraform terraform ansible")
	require.NoError(t, err)

	assert.Equal(t, []string{"kubernetes", "terraform", "ansible"}, keywords)
}

func TestExtractKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	a := newTestAnalyzer()

	keywords, err := a.ExtractKeywords("zebra apple zebra apple")
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple"}, keywords)
}

func TestExtractKeywords_FiltersShortStopAndNumeric(t *testing.T) {
	a := newTestAnalyzer()

	keywords, err := a.ExtractKeywords("the and 2019 12345 sql api engineering")
	require.NoError(t, err)

	// Stopwords, pure numbers, and words of three letters or fewer drop out.
	assert.Equal(t, []string{"engineering"}, keywords)
}

func TestExtractKeywords_CapsAtTwenty(t *testing.T) {
	a := newTestAnalyzer()

	words := make([]string, 0, 30)
	for _, prefix := range []string{"alpha", "bravo", "delta", "gamma", "omega", "sigma"} {
		for _, suffix := range []string{"one", "two", "three", "four", "five"} {
			words = append(words, prefix+suffix)
		}
	}
	keywords, err := a.ExtractKeywords(strings.Join(words, " "))
	require.NoError(t, err)

	assert.Len(t, keywords, 20)
}
