package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Breakfast", "breakfast"},
		{"spaces become hyphens", "Main Course", "main-course"},
		{"strips special characters", "Mac & Cheese!", "mac-cheese"},
		{"collapses whitespace runs", "Slow   Cooked  Stews", "slow-cooked-stews"},
		{"collapses hyphen runs", "Pre--Made Meals", "pre-made-meals"},
		{"keeps existing hyphens", "gluten-free", "gluten-free"},
		{"non-ascii letters are stripped", "Smörgåsbord", "smrgsbord"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlug_Idempotent(t *testing.T) {
	inputs := []string{"Breakfast", "Mac & Cheese!", "Main Course", "gluten-free"}
	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once), "slug of %q should be stable", input)
	}
}
