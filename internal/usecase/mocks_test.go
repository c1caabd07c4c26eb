package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/citystrata-service/internal/domain"
)

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) GetCollection(ctx context.Context, kind domain.ResourceKind, filters map[string]string) (*domain.FeatureCollection, error) {
	args := m.Called(ctx, kind, filters)
	if fc := args.Get(0); fc != nil {
		return fc.(*domain.FeatureCollection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResourceRepository) GetByKey(ctx context.Context, kind domain.ResourceKind, key string) (*domain.Feature, error) {
	args := m.Called(ctx, kind, key)
	if f := args.Get(0); f != nil {
		return f.(*domain.Feature), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResourceRepository) GetNearby(ctx context.Context, kind domain.ResourceKind, lat, lon float64, radiusMeters, limit int) (*domain.FeatureCollection, error) {
	args := m.Called(ctx, kind, lat, lon, radiusMeters, limit)
	if fc := args.Get(0); fc != nil {
		return fc.(*domain.FeatureCollection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResourceRepository) GetFacilityTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if types := args.Get(0); types != nil {
		return types.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEvacuationRepository struct {
	mock.Mock
}

func (m *MockEvacuationRepository) GetAreaCapacities(ctx context.Context, areas []int) ([]domain.AreaCapacityRow, error) {
	args := m.Called(ctx, areas)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.AreaCapacityRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvacuationRepository) GetAreaInstitutionCounts(ctx context.Context, areas []int) ([]domain.AreaInstitutionRow, error) {
	args := m.Called(ctx, areas)
	if rows := args.Get(0); rows != nil {
		return rows.([]domain.AreaInstitutionRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEvacuationRepository) GetAreaSummary(ctx context.Context, areaCode int) (*domain.AreaSummary, error) {
	args := m.Called(ctx, areaCode)
	if summary := args.Get(0); summary != nil {
		return summary.(*domain.AreaSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if value := args.Get(0); value != nil {
		return value.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
