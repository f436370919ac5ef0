package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple name",
			input: "Apple Pie",
			want:  "apple-pie",
		},
		{
			name:  "diacritics stripped",
			input: "Crème Brûlée",
			want:  "creme-brulee",
		},
		{
			name:  "punctuation collapses",
			input: "Mac & Cheese!!",
			want:  "mac-cheese",
		},
		{
			name:  "leading and trailing separators trimmed",
			input: "  --Spicy Ramen--  ",
			want:  "spicy-ramen",
		},
		{
			name:  "digits kept",
			input: "5-Minute Salad",
			want:  "5-minute-salad",
		},
		{
			name:  "already a slug",
			input: "apple-pie",
			want:  "apple-pie",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only separators",
			input: "!!!",
			want:  "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Slugify(testCase.input))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	first := Slugify("Crème Brûlée")
	second := Slugify("Crème Brûlée")
	assert.Equal(t, first, second)
}
