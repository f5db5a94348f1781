package models

// RiskAssessmentRequest represents the request body for a risk assessment.
// Volatility choice is accepted as raw text and normalized at the boundary.
type RiskAssessmentRequest struct {
	TimeHorizonYears      int    `json:"time_horizon_years" binding:"min=0"`
	EmergencyFundMonths   int    `json:"emergency_fund_months" binding:"min=0"`
	IncomeStabilityRating int    `json:"income_stability_rating" binding:"required"`
	VolatilityChoice      string `json:"volatility_choice" binding:"required"`
	HasDependents         bool   `json:"has_dependents"`
	DebtExceedsAssets     bool   `json:"debt_exceeds_assets"`
}

// RiskAssessmentResponse wraps the assessment under the key the orchestrating
// agent merges into its financial state object
type RiskAssessmentResponse struct {
	RiskAssessmentData RiskOutput `json:"risk_assessment_data"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
