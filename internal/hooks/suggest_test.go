package hooks

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tool     string
		expected []string
	}{
		{"Edit", []string{"edit"}},
		{"Write", []string{"write"}},
		{"multiedit", []string{"edit"}},
		{"todowrite", []string{"write"}},
		{"apply_patch", []string{"patch"}},
		{"read", nil},
		{"bash", nil},
		{"edit", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			t.Parallel()
			if got := Suggest(tt.tool); !slices.Equal(got, tt.expected) {
				t.Errorf("Suggest(%q) = %q, want %q", tt.tool, got, tt.expected)
			}
		})
	}
}
