package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/pkg/utils"
	"github.com/citystrata-service/internal/usecase"
	"github.com/citystrata-service/internal/usecase/dto"
)

const defaultNearbyRadiusMeters = 1000

// NearbyHandler serves the proximity-search route.
type NearbyHandler struct {
	nearbyUC *usecase.NearbyUseCase
	logger   *zap.Logger
}

func NewNearbyHandler(nearbyUC *usecase.NearbyUseCase, logger *zap.Logger) *NearbyHandler {
	return &NearbyHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// Search handles GET /nearby?lat&lon&radius&type. The transport only
// decodes primitives; range checks and the kind allow-list live in the
// usecase.
func (h *NearbyHandler) Search(c *fiber.Ctx) error {
	lat, err := requiredFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := requiredFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}

	radius := defaultNearbyRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil {
			return utils.SendError(c, errors.InvalidFilter("radius expects an integer, got %q", raw))
		}
	}

	kind := c.Query("type")
	if kind == "" {
		return utils.SendError(c, errors.InvalidFilter("type parameter is required"))
	}

	collection, searchErr := h.nearbyUC.Search(c.Context(), dto.NearbyRequest{
		Lat:          lat,
		Lon:          lon,
		RadiusMeters: radius,
		Kind:         kind,
	})
	if searchErr != nil {
		return utils.SendError(c, searchErr)
	}

	return c.JSON(collection)
}

func requiredFloat(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.InvalidFilter("%s parameter is required", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidFilter("%s expects a number, got %q", name, raw)
	}
	return value, nil
}
