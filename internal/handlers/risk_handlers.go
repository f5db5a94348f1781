package handlers

import (
	"errors"
	"net/http"

	"github.com/epeers/riskprofile/internal/middleware"
	"github.com/epeers/riskprofile/internal/models"
	"github.com/epeers/riskprofile/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RiskHandler handles risk assessment endpoints
type RiskHandler struct {
	riskSvc *services.RiskService
}

// NewRiskHandler creates a new RiskHandler
func NewRiskHandler(riskSvc *services.RiskService) *RiskHandler {
	return &RiskHandler{
		riskSvc: riskSvc,
	}
}

// Assess handles POST /risk/assessments
// @Summary Compute a client's risk assessment
// @Description Derives the composite risk score and qualitative risk profile from six client inputs. The response nests the record under risk_assessment_data so the caller can merge it verbatim into its state.
// @Tags risk
// @Accept json
// @Produce json
// @Param request body models.RiskAssessmentRequest true "Client risk inputs"
// @Success 200 {object} models.RiskAssessmentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /risk/assessments [post]
func (h *RiskHandler) Assess(c *gin.Context) {
	var req models.RiskAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	reaction, err := models.ParseVolatilityReaction(req.VolatilityChoice)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "volatility_choice must be A, B, C, or a recognized synonym",
		})
		return
	}

	output, err := h.riskSvc.Assess(models.RiskInput{
		TimeHorizonYears:      req.TimeHorizonYears,
		EmergencyFundMonths:   req.EmergencyFundMonths,
		IncomeStabilityRating: req.IncomeStabilityRating,
		VolatilityChoice:      reaction,
		HasDependents:         req.HasDependents,
		DebtExceedsAssets:     req.DebtExceedsAssets,
	})
	if err != nil {
		if errors.Is(err, services.ErrNegativeTimeHorizon) ||
			errors.Is(err, services.ErrNegativeEmergencyFund) ||
			errors.Is(err, services.ErrRatingOutOfRange) ||
			errors.Is(err, services.ErrUnknownReaction) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	if agentID, ok := middleware.GetAgentID(c); ok {
		log.Infof("risk assessment for agent %s: score=%d profile=%q",
			agentID, output.RawRiskScore, output.RiskProfile)
	}

	c.JSON(http.StatusOK, models.RiskAssessmentResponse{
		RiskAssessmentData: *output,
	})
}
