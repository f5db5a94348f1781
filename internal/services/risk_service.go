package services

import (
	"errors"
	"time"

	"github.com/epeers/riskprofile/internal/models"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNegativeTimeHorizon   = errors.New("time horizon must be a non-negative number of years")
	ErrNegativeEmergencyFund = errors.New("emergency fund must be a non-negative number of months")
	ErrRatingOutOfRange      = errors.New("income stability rating must be between 1 and 5")
	ErrUnknownReaction       = errors.New("volatility choice is not a canonical reaction code")
)

// Maximum points awarded per sub-score.
const (
	maxCapacityScore  = 40
	maxToleranceScore = 30

	minStabilityRating = 1
	maxStabilityRating = 5
)

// RiskService computes a composite risk score and qualitative risk profile
// from six client inputs. It holds no state and is safe for concurrent use;
// every assessment is a pure function of its input.
type RiskService struct{}

// NewRiskService creates a new RiskService
func NewRiskService() *RiskService {
	return &RiskService{}
}

// Assess validates the input and derives the five-field assessment record.
// Inputs outside their documented domain are rejected, never clamped.
func (s *RiskService) Assess(input models.RiskInput) (*models.RiskOutput, error) {
	defer TrackTime("Assess", time.Now())

	if input.TimeHorizonYears < 0 {
		return nil, ErrNegativeTimeHorizon
	}
	if input.EmergencyFundMonths < 0 {
		return nil, ErrNegativeEmergencyFund
	}
	if input.IncomeStabilityRating < minStabilityRating || input.IncomeStabilityRating > maxStabilityRating {
		return nil, ErrRatingOutOfRange
	}
	tolerance, ok := toleranceScores[input.VolatilityChoice]
	if !ok {
		return nil, ErrUnknownReaction
	}

	capacity := capacityScore(input)
	rawScore := capacity + tolerance

	log.Debugf("risk assessment: capacity=%d/%d tolerance=%d/%d raw=%d",
		capacity, maxCapacityScore, tolerance, maxToleranceScore, rawScore)

	return &models.RiskOutput{
		RawRiskScore:          rawScore,
		RiskProfile:           profileFor(rawScore),
		InvestmentTimeHorizon: horizonLabelFor(input.TimeHorizonYears),
		InsuranceGaps:         insuranceGapAdvisory(input.HasDependents),
		LiquidityRisk:         liquidityRiskAdvisory(input.DebtExceedsAssets),
	}, nil
}

// capacityScore sums the three capped capacity terms (0-40). Assumes the
// input has already been range-checked.
func capacityScore(input models.RiskInput) int {
	score := bandPoints(horizonBands, input.TimeHorizonYears)
	score += bandPoints(fundBands, input.EmergencyFundMonths)
	score += input.IncomeStabilityRating * incomeStabilityWeight
	return score
}

// insuranceGapAdvisory flags a potential protection gap for clients with
// financial dependents. Advisory only, never folded into the numeric score.
func insuranceGapAdvisory(hasDependents bool) string {
	if hasDependents {
		return models.InsuranceGapDependents
	}
	return models.InsuranceGapNone
}

// liquidityRiskAdvisory flags balance-sheet stress when liabilities exceed
// assets. Advisory only, never folded into the numeric score.
func liquidityRiskAdvisory(debtExceedsAssets bool) string {
	if debtExceedsAssets {
		return models.LiquidityRiskElevated
	}
	return models.LiquidityRiskBalanced
}
