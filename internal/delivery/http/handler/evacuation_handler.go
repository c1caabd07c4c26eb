package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/pkg/utils"
	"github.com/citystrata-service/internal/pkg/validator"
	"github.com/citystrata-service/internal/usecase"
	"github.com/citystrata-service/internal/usecase/dto"
)

// EvacuationHandler serves the evacuation analysis and area summary routes.
type EvacuationHandler struct {
	evacuationUC *usecase.EvacuationUseCase
	logger       *zap.Logger
}

func NewEvacuationHandler(evacuationUC *usecase.EvacuationUseCase, logger *zap.Logger) *EvacuationHandler {
	return &EvacuationHandler{
		evacuationUC: evacuationUC,
		logger:       logger,
	}
}

// Analyze handles POST /evacuation/analyze.
func (h *EvacuationHandler) Analyze(c *fiber.Ctx) error {
	var req dto.EvacuationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.InvalidFilter("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.InvalidFilter("at least one area must be specified for evacuation"))
	}

	analysis, err := h.evacuationUC.Analyze(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(analysis)
}

// AreaSummary handles GET /areas/:code/summary.
func (h *EvacuationHandler) AreaSummary(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return utils.SendError(c, errors.InvalidFilter("area code expects an integer"))
	}

	summary, sumErr := h.evacuationUC.AreaSummary(c.Context(), code)
	if sumErr != nil {
		return utils.SendError(c, sumErr)
	}

	return c.JSON(summary)
}
