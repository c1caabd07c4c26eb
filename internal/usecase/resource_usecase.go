package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/domain/repository"
	"github.com/citystrata-service/internal/pkg/errors"
)

// ResourceUseCase serves per-kind GeoJSON collections and single-resource
// lookups. Collection responses are rendered once and cached as bytes, so
// identical requests against an unchanged store return identical output.
type ResourceUseCase struct {
	resourceRepo repository.ResourceRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewResourceUseCase(
	resourceRepo repository.ResourceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ResourceUseCase {
	return &ResourceUseCase{
		resourceRepo: resourceRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// GetCollection returns the rendered FeatureCollection JSON for one kind.
func (uc *ResourceUseCase) GetCollection(
	ctx context.Context,
	kindName string,
	filters map[string]string,
) ([]byte, error) {
	kind, ok := domain.ParseResourceKind(kindName)
	if !ok {
		return nil, errors.InvalidFilter("unknown resource kind %q", kindName)
	}

	cacheKey := collectionCacheKey(kind, filters)
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	collection, err := uc.resourceRepo.GetCollection(ctx, kind, filters)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(collection)
	if err != nil {
		uc.logger.Error("Failed to render feature collection",
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
		return nil, errors.ErrStoreUnavailable
	}

	// Cache failures degrade to direct reads, never to request failures.
	if err := uc.cacheRepo.Set(ctx, cacheKey, body, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache feature collection", zap.String("key", cacheKey), zap.Error(err))
	}

	return body, nil
}

// GetResource returns a single Feature looked up by the kind's key.
func (uc *ResourceUseCase) GetResource(
	ctx context.Context,
	kindName, key string,
) (*domain.Feature, error) {
	kind, ok := domain.ParseResourceKind(kindName)
	if !ok {
		return nil, errors.InvalidFilter("unknown resource kind %q", kindName)
	}

	return uc.resourceRepo.GetByKey(ctx, kind, key)
}

// GetFacilityTypes lists the distinct facility types present in the city.
func (uc *ResourceUseCase) GetFacilityTypes(ctx context.Context) ([]string, error) {
	types, err := uc.resourceRepo.GetFacilityTypes(ctx)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

// collectionCacheKey canonicalizes the filter map so equivalent requests
// share one cache entry.
func collectionCacheKey(kind domain.ResourceKind, filters map[string]string) string {
	pairs := make([]string, 0, len(filters))
	for name, value := range filters {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)

	var b strings.Builder
	b.WriteString("collection:")
	b.WriteString(kind.String())
	for _, pair := range pairs {
		b.WriteString(":")
		b.WriteString(pair)
	}
	return b.String()
}
