package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/citystrata-service/internal/config"
	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/domain/repository"
	"github.com/citystrata-service/internal/pkg/errors"
	"github.com/citystrata-service/internal/usecase/dto"
)

const defaultScenario = "emergency"

// EvacuationUseCase computes the capacity-vs-need analysis over a caller
// selected set of statistical areas.
type EvacuationUseCase struct {
	evacRepo repository.EvacuationRepository
	logger   *zap.Logger
	city     config.CityConfig
}

func NewEvacuationUseCase(
	evacRepo repository.EvacuationRepository,
	logger *zap.Logger,
	city config.CityConfig,
) *EvacuationUseCase {
	return &EvacuationUseCase{
		evacRepo: evacRepo,
		logger:   logger,
		city:     city,
	}
}

// Analyze aggregates lodging capacity and institution-derived need per
// requested area. Every requested area appears in the result, in request
// order, zero-valued when the source tables have no rows for it; omitting
// sparse areas would silently skew the totals. The two aggregate reads
// must both succeed; a failure on either aborts the whole analysis.
func (uc *EvacuationUseCase) Analyze(ctx context.Context, req dto.EvacuationRequest) (*domain.EvacuationAnalysis, error) {
	if len(req.EvacuateAreas) == 0 {
		return nil, errors.InvalidFilter("at least one area must be specified for evacuation")
	}

	scenario := req.Scenario
	if scenario == "" {
		scenario = defaultScenario
	}

	capacityRows, err := uc.evacRepo.GetAreaCapacities(ctx, req.EvacuateAreas)
	if err != nil {
		return nil, err
	}

	institutionRows, err := uc.evacRepo.GetAreaInstitutionCounts(ctx, req.EvacuateAreas)
	if err != nil {
		return nil, err
	}

	capacityByCode := make(map[int]domain.AreaCapacityRow, len(capacityRows))
	for _, row := range capacityRows {
		capacityByCode[row.AreaCode] = row
	}
	institutionsByCode := make(map[int]domain.AreaInstitutionRow, len(institutionRows))
	for _, row := range institutionRows {
		institutionsByCode[row.AreaCode] = row
	}

	perPerson := uc.city.ChildrenPerInstitution + uc.city.StaffPerInstitution

	capacityByArea := make([]domain.AreaCapacity, 0, len(req.EvacuateAreas))
	needByArea := make([]domain.AreaNeed, 0, len(req.EvacuateAreas))
	totalCapacity := 0
	totalNeed := 0

	for _, area := range req.EvacuateAreas {
		capacity := domain.AreaCapacity{AreaCode: area}
		if row, ok := capacityByCode[area]; ok {
			capacity.LodgingCapacity = row.Capacity
			capacity.TotalCapacity = row.Capacity
		}
		capacityByArea = append(capacityByArea, capacity)
		totalCapacity += capacity.TotalCapacity

		need := domain.AreaNeed{AreaCode: area}
		if row, ok := institutionsByCode[area]; ok {
			need.InstitutionsCount = row.InstitutionsCount
			need.EstimatedChildren = row.InstitutionsCount * uc.city.ChildrenPerInstitution
			need.EstimatedStaff = row.InstitutionsCount * uc.city.StaffPerInstitution
			need.TotalEstimatedPopulation = row.InstitutionsCount * perPerson
		}
		needByArea = append(needByArea, need)
		totalNeed += need.TotalEstimatedPopulation
	}

	deficit := totalCapacity - totalNeed

	return &domain.EvacuationAnalysis{
		EvacuateAreas:   req.EvacuateAreas,
		TotalNeed:       totalNeed,
		TotalCapacity:   totalCapacity,
		CapacityDeficit: deficit,
		CapacityByArea:  capacityByArea,
		NeedByArea:      needByArea,
		Recommendations: buildRecommendations(deficit, totalNeed, req.ResourceAreas),
		Scenario:        scenario,
	}, nil
}

// AreaSummary returns the resource inventory aggregate for one area.
func (uc *EvacuationUseCase) AreaSummary(ctx context.Context, areaCode int) (*domain.AreaSummary, error) {
	return uc.evacRepo.GetAreaSummary(ctx, areaCode)
}

// buildRecommendations is deterministic and order-preserving: deficit
// statement first, then the resource-area suggestion, then the empty-need
// note. The last one guards against a large "surplus" being read as "no
// risk" when the need side is simply empty data.
func buildRecommendations(deficit, totalNeed int, resourceAreas []int) []string {
	recommendations := []string{}

	if deficit < 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"WARNING: Capacity deficit of %d people. Need to find additional accommodation.",
			-deficit,
		))
	} else {
		recommendations = append(recommendations, fmt.Sprintf(
			"Sufficient capacity available: %d surplus spaces.",
			deficit,
		))
	}

	if len(resourceAreas) > 0 {
		codes := make([]string, 0, len(resourceAreas))
		for _, area := range resourceAreas {
			codes = append(codes, strconv.Itoa(area))
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider utilizing resources from areas: %s",
			strings.Join(codes, ", "),
		))
	}

	if totalNeed == 0 {
		recommendations = append(recommendations, "No educational institutions found in specified areas.")
	}

	return recommendations
}
