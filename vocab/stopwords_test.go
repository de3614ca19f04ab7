package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWordFilter_IsStopWord(t *testing.T) {
	f := NewStopWordFilter([]string{"en", "zh"}, []string{"sprint"})

	assert.True(t, f.IsStopWord("what"))
	assert.True(t, f.IsStopWord("What"))
	assert.True(t, f.IsStopWord("task"))
	assert.True(t, f.IsStopWord("任务"))
	assert.True(t, f.IsStopWord("sprint")) // user addition
	assert.False(t, f.IsStopWord("login"))
	assert.False(t, f.IsStopWord("надо")) // ru not configured
}

func TestStopWordFilter_Filter(t *testing.T) {
	f := NewStopWordFilter([]string{"en"}, nil)

	kept := f.Filter([]string{"show", "me", "the", "login", "bug"})
	assert.Equal(t, []string{"login", "bug"}, kept)
}

func TestVaguenessRatio(t *testing.T) {
	f := NewStopWordFilter([]string{"en"}, nil)

	tests := []struct {
		name   string
		tokens []string
		want   float64
	}{
		{name: "fully vague", tokens: []string{"what", "should", "i", "do"}, want: 1.0},
		{name: "fully specific", tokens: []string{"login", "bug"}, want: 0.0},
		{name: "mixed", tokens: []string{"show", "login", "bug", "please"}, want: 0.5},
		{name: "empty counts as vague", tokens: nil, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, f.VaguenessRatio(tt.tokens), 1e-9)
		})
	}
}

func TestStopWordFilter_UnknownLanguageIsHarmless(t *testing.T) {
	f := NewStopWordFilter([]string{"tlh"}, nil)
	assert.True(t, f.IsStopWord("task")) // core list still applies
}
