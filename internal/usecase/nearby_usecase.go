package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/citystrata-service/internal/config"
	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/domain/repository"
	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/schema"
	"github.com/citystrata-service/internal/usecase/dto"
)

// NearbyUseCase validates proximity-search input and delegates the radius
// and distance work to the spatial store.
type NearbyUseCase struct {
	resourceRepo repository.ResourceRepository
	logger       *zap.Logger
	city         config.CityConfig
}

func NewNearbyUseCase(
	resourceRepo repository.ResourceRepository,
	logger *zap.Logger,
	city config.CityConfig,
) *NearbyUseCase {
	return &NearbyUseCase{
		resourceRepo: resourceRepo,
		logger:       logger,
		city:         city,
	}
}

// Search returns resources of one kind within the radius, ordered by
// ascending distance, each carrying a derived distance_meters property.
// All validation happens before any store query is issued; out-of-bound
// values are rejected, not clamped.
func (uc *NearbyUseCase) Search(ctx context.Context, req dto.NearbyRequest) (*domain.FeatureCollection, error) {
	kind, ok := domain.ParseResourceKind(req.Kind)
	if !ok {
		return nil, errors.InvalidFilter("unknown resource kind %q", req.Kind)
	}

	s, err := schema.Describe(kind)
	if err != nil {
		uc.logger.Error("Schema registry misconfigured", zap.String("kind", kind.String()), zap.Error(err))
		return nil, err
	}
	if !s.Nearby {
		return nil, errors.InvalidFilter("resource kind %s does not support proximity search", kind)
	}

	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return nil, errors.InvalidFilter("coordinates out of range: lat=%v lon=%v", req.Lat, req.Lon)
	}
	if req.RadiusMeters < uc.city.NearbyMinRadiusMeters || req.RadiusMeters > uc.city.NearbyMaxRadiusMeters {
		return nil, errors.InvalidFilter(
			"radius must be between %d and %d meters",
			uc.city.NearbyMinRadiusMeters, uc.city.NearbyMaxRadiusMeters,
		)
	}

	return uc.resourceRepo.GetNearby(ctx, kind, req.Lat, req.Lon, req.RadiusMeters, uc.city.NearbyResultLimit)
}
