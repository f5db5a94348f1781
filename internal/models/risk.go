package models

import (
	"errors"
	"strings"
)

// VolatilityReaction represents the client's behavioral response to a
// hypothetical 20% portfolio decline
type VolatilityReaction string

const (
	ReactionSell       VolatilityReaction = "A"
	ReactionHold       VolatilityReaction = "B"
	ReactionInvestMore VolatilityReaction = "C"
)

// ErrUnknownVolatilityReaction is returned when an input string maps to no
// canonical reaction code
var ErrUnknownVolatilityReaction = errors.New("volatility reaction does not map to a canonical code")

// reactionSynonyms maps recognized free-text answers onto canonical codes.
// Matching is case-insensitive; anything outside this table is rejected.
var reactionSynonyms = map[string]VolatilityReaction{
	"a":           ReactionSell,
	"sell":        ReactionSell,
	"b":           ReactionHold,
	"hold":        ReactionHold,
	"hold steady": ReactionHold,
	"c":           ReactionInvestMore,
	"invest more": ReactionInvestMore,
	"buy more":    ReactionInvestMore,
}

// ParseVolatilityReaction normalizes a raw volatility answer to its canonical
// code. Unrecognized input returns ErrUnknownVolatilityReaction; no default
// is substituted.
func ParseVolatilityReaction(s string) (VolatilityReaction, error) {
	r, ok := reactionSynonyms[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownVolatilityReaction
	}
	return r, nil
}

// RiskProfile represents the qualitative profile derived from the raw score
type RiskProfile string

const (
	ProfileVeryConservative RiskProfile = "Very Conservative"
	ProfileConservative     RiskProfile = "Conservative"
	ProfileModerate         RiskProfile = "Moderate"
	ProfileGrowthOriented   RiskProfile = "Growth-Oriented"
	ProfileAggressive       RiskProfile = "Aggressive"
)

// Investment time horizon labels derived from time_horizon_years
const (
	HorizonLongTerm   = "Long-term (Aggressive Capacity)"
	HorizonMediumTerm = "Medium-term (Moderate Capacity)"
	HorizonShortTerm  = "Short-term (Conservative Capacity)"
)

// Insurance-gap advisories, keyed on the dependents flag
const (
	InsuranceGapDependents = "Potential Need for Life and Disability Insurance."
	InsuranceGapNone       = "Basic Coverage Only."
)

// Liquidity-risk advisories, keyed on the debt-exceeds-assets flag
const (
	LiquidityRiskElevated = "High Liquidity Risk and Financial Stress."
	LiquidityRiskBalanced = "Balanced."
)

// RiskInput holds the six client answers the scorer consumes. It is
// constructed by the caller and never mutated.
type RiskInput struct {
	TimeHorizonYears      int
	EmergencyFundMonths   int
	IncomeStabilityRating int
	VolatilityChoice      VolatilityReaction
	HasDependents         bool
	DebtExceedsAssets     bool
}

// RiskOutput is the structured assessment record. Field names are stable:
// the orchestrating agent merges this record verbatim into its persisted
// financial state.
type RiskOutput struct {
	RawRiskScore          int         `json:"raw_risk_score"`
	RiskProfile           RiskProfile `json:"risk_profile"`
	InvestmentTimeHorizon string      `json:"investment_time_horizon"`
	InsuranceGaps         string      `json:"insurance_gaps"`
	LiquidityRisk         string      `json:"liquidity_risk"`
}
