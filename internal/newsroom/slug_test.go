package newsroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and joins words",
			input:    "City Council Meeting",
			expected: "city-council-meeting",
		},
		{
			name:     "strips punctuation",
			input:    "Breaking: Mayor Resigns!!",
			expected: "breaking-mayor-resigns",
		},
		{
			name:     "collapses repeated whitespace",
			input:    "Budget   Vote    Delayed",
			expected: "budget-vote-delayed",
		},
		{
			name:     "collapses repeated hyphens",
			input:    "north--south -- corridor",
			expected: "north-south-corridor",
		},
		{
			name:     "trims leading and trailing hyphens",
			input:    "  --Transit Plan--  ",
			expected: "transit-plan",
		},
		{
			name:     "keeps digits",
			input:    "2024 Budget in 5 Charts",
			expected: "2024-budget-in-5-charts",
		},
		{
			name:     "drops non-ascii characters",
			input:    "Café Réopens",
			expected: "caf-ropens",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
