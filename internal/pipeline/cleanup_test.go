package pipeline_test

import (
	"testing"

	"github.com/stocksense/stocksense/internal/pipeline"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello.World", "Hello. World"},
		{"the priceIs low", "the price Is low"},
		{"we have 3units left", "we have 3 units left"},
		{"We found 3items.Great news", "We found 3 items. Great news"},
		{"Already clean. No changes here.", "Already clean. No changes here."},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := pipeline.CleanText(tt.in)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"Hello.World",
		"the priceIs low",
		"we have 3units left",
		"Sale ends soon.Buy 2shirts andSave big",
	}
	for _, in := range inputs {
		once := pipeline.CleanText(in)
		twice := pipeline.CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: once %q, twice %q", in, once, twice)
		}
	}
}
