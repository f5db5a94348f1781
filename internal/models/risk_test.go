package models

import (
	"errors"
	"testing"
)

// TestParseVolatilityReaction checks that canonical codes and documented
// synonyms normalize correctly, case-insensitively
func TestParseVolatilityReaction(t *testing.T) {
	tests := []struct {
		raw  string
		want VolatilityReaction
	}{
		{"A", ReactionSell},
		{"a", ReactionSell},
		{"Sell", ReactionSell},
		{"B", ReactionHold},
		{"hold", ReactionHold},
		{"Hold Steady", ReactionHold},
		{"C", ReactionInvestMore},
		{"invest more", ReactionInvestMore},
		{"BUY MORE", ReactionInvestMore},
		{"  b  ", ReactionHold},
	}

	for _, tc := range tests {
		got, err := ParseVolatilityReaction(tc.raw)
		if err != nil {
			t.Errorf("ParseVolatilityReaction(%q) returned error %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVolatilityReaction(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

// TestParseVolatilityReactionRejectsUnknown checks that anything outside the
// synonym table fails fast instead of defaulting
func TestParseVolatilityReactionRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"Z", "", "maybe", "d", "panic and sell everything"} {
		got, err := ParseVolatilityReaction(raw)
		if !errors.Is(err, ErrUnknownVolatilityReaction) {
			t.Errorf("ParseVolatilityReaction(%q) error = %v, want ErrUnknownVolatilityReaction", raw, err)
		}
		if got != "" {
			t.Errorf("ParseVolatilityReaction(%q) = %q, want empty on rejection", raw, got)
		}
	}
}
