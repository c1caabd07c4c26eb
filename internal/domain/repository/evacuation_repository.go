package repository

import (
	"context"

	"github.com/citystrata-service/internal/domain"
)

// EvacuationRepository runs the per-area aggregate reads behind evacuation
// analysis. The two aggregates are independent read statements; merging and
// zero-fill happen above this layer.
type EvacuationRepository interface {
	// GetAreaCapacities sums lodging person capacity grouped by area,
	// restricted to the given area set. Areas with no lodging rows are
	// simply absent from the result.
	GetAreaCapacities(ctx context.Context, areas []int) ([]domain.AreaCapacityRow, error)

	// GetAreaInstitutionCounts counts institutions grouped by area,
	// restricted to the given area set.
	GetAreaInstitutionCounts(ctx context.Context, areas []int) ([]domain.AreaInstitutionRow, error)

	// GetAreaSummary aggregates the resource inventory of one area.
	GetAreaSummary(ctx context.Context, areaCode int) (*domain.AreaSummary, error)
}
