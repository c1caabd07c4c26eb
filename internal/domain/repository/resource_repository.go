package repository

import (
	"context"

	"github.com/citystrata-service/internal/domain"
)

// ResourceRepository executes compiled resource queries against the spatial
// store. Each call is a single bounded read; repeating a call re-executes it.
type ResourceRepository interface {
	// GetCollection fetches one kind's resources filtered by the caller's
	// raw filter inputs, materialized as GeoJSON Features in the kind's
	// default order.
	GetCollection(ctx context.Context, kind domain.ResourceKind, filters map[string]string) (*domain.FeatureCollection, error)

	// GetByKey fetches a single resource by its kind's lookup key.
	GetByKey(ctx context.Context, kind domain.ResourceKind, key string) (*domain.Feature, error)

	// GetNearby fetches resources of one kind within radiusMeters of the
	// point, ordered by ascending store-computed distance, capped at limit.
	// Each feature carries a derived distance_meters property.
	GetNearby(ctx context.Context, kind domain.ResourceKind, lat, lon float64, radiusMeters, limit int) (*domain.FeatureCollection, error)

	// GetFacilityTypes lists the distinct facility types present in the city.
	GetFacilityTypes(ctx context.Context) ([]string, error)
}
