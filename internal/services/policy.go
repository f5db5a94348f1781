package services

import (
	"github.com/epeers/riskprofile/internal/models"
)

// Scoring policy tables. Cut points are a policy choice; the hard invariants
// are that every band list is sorted by descending threshold and that the
// label tables end with a zero-threshold catch-all, so any non-negative value
// lands in exactly one band.

// scoreBand awards points when the input is at or above the threshold.
type scoreBand struct {
	threshold int
	points    int
}

// horizonBands caps at 20 points: the time horizon tends to be the biggest
// capacity factor.
var horizonBands = []scoreBand{
	{threshold: 15, points: 20},
	{threshold: 10, points: 15},
	{threshold: 5, points: 10},
	{threshold: 2, points: 5},
}

// fundBands caps at 10 points (>= 6 months is a strong buffer).
var fundBands = []scoreBand{
	{threshold: 6, points: 10},
	{threshold: 3, points: 5},
}

// incomeStabilityWeight scales the 1..5 rating onto 2..10 points.
const incomeStabilityWeight = 2

// toleranceScores caps at 30 points, a single lookup on the canonical
// reaction code.
var toleranceScores = map[models.VolatilityReaction]int{
	models.ReactionSell:       0,
	models.ReactionHold:       15,
	models.ReactionInvestMore: 30,
}

// profileBands partitions the raw score range [0,70].
var profileBands = []struct {
	threshold int
	profile   models.RiskProfile
}{
	{threshold: 55, profile: models.ProfileAggressive},
	{threshold: 40, profile: models.ProfileGrowthOriented},
	{threshold: 25, profile: models.ProfileModerate},
	{threshold: 10, profile: models.ProfileConservative},
	{threshold: 0, profile: models.ProfileVeryConservative},
}

// horizonLabels partitions the time-horizon domain.
var horizonLabels = []struct {
	threshold int
	label     string
}{
	{threshold: 10, label: models.HorizonLongTerm},
	{threshold: 5, label: models.HorizonMediumTerm},
	{threshold: 0, label: models.HorizonShortTerm},
}

// bandPoints returns the points of the highest band whose threshold the value
// meets, or 0 when none match.
func bandPoints(bands []scoreBand, value int) int {
	for _, b := range bands {
		if value >= b.threshold {
			return b.points
		}
	}
	return 0
}

// profileFor maps a raw score to its risk profile. The catch-all band makes
// this total over non-negative scores.
func profileFor(rawScore int) models.RiskProfile {
	for _, b := range profileBands {
		if rawScore >= b.threshold {
			return b.profile
		}
	}
	return models.ProfileVeryConservative
}

// horizonLabelFor maps a time horizon in years to its descriptive label.
func horizonLabelFor(years int) string {
	for _, b := range horizonLabels {
		if years >= b.threshold {
			return b.label
		}
	}
	return models.HorizonShortTerm
}
