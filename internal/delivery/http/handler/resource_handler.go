package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/pkg/utils"
	"github.com/citystrata-service/internal/usecase"
	"github.com/citystrata-service/internal/usecase/dto"
)

// ResourceHandler serves the generic per-kind collection and lookup routes.
type ResourceHandler struct {
	resourceUC *usecase.ResourceUseCase
	logger     *zap.Logger
}

func NewResourceHandler(resourceUC *usecase.ResourceUseCase, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		resourceUC: resourceUC,
		logger:     logger,
	}
}

// GetCollection returns a kind's resources as a bare GeoJSON
// FeatureCollection. Query parameters are the kind's declared filters;
// anything else is rejected.
func (h *ResourceHandler) GetCollection(c *fiber.Ctx) error {
	kind := c.Params("kind")
	filters := c.Queries()

	body, err := h.resourceUC.GetCollection(c.Context(), kind, filters)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// GetResource returns a single resource as a bare GeoJSON Feature.
func (h *ResourceHandler) GetResource(c *fiber.Ctx) error {
	kind := c.Params("kind")
	key := c.Params("key")

	feature, err := h.resourceUC.GetResource(c.Context(), kind, key)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(feature)
}

// GetFacilityTypes lists the distinct facility types, for filter dropdowns.
func (h *ResourceHandler) GetFacilityTypes(c *fiber.Ctx) error {
	types, err := h.resourceUC.GetFacilityTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.FacilityTypesResponse{Types: types})
}
