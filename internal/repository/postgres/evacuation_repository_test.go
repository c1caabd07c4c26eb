package postgres_test

import (
	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/pkg/errors"
)

func (s *RepositorySuite) TestGetAreaCapacities_GroupsByArea() {
	rows, err := s.evacRepo.GetAreaCapacities(s.ctx, []int{101, 102})
	s.Require().NoError(err)

	byArea := make(map[int]domain.AreaCapacityRow, len(rows))
	for _, row := range rows {
		byArea[row.AreaCode] = row
	}

	s.Require().Len(byArea, 2)
	s.Equal(2, byArea[101].ListingCount)
	s.Equal(14, byArea[101].Capacity)
	s.Equal(1, byArea[102].ListingCount)
	s.Equal(2, byArea[102].Capacity)
}

func (s *RepositorySuite) TestGetAreaCapacities_EmptyAreasAbsent() {
	rows, err := s.evacRepo.GetAreaCapacities(s.ctx, []int{101, 999})
	s.Require().NoError(err)

	s.Require().Len(rows, 1)
	s.Equal(101, rows[0].AreaCode)
}

func (s *RepositorySuite) TestGetAreaInstitutionCounts_GroupsByArea() {
	rows, err := s.evacRepo.GetAreaInstitutionCounts(s.ctx, []int{101, 102})
	s.Require().NoError(err)

	byArea := make(map[int]int, len(rows))
	for _, row := range rows {
		byArea[row.AreaCode] = row.InstitutionsCount
	}

	// The other-city institution in area 101 never counts.
	s.Equal(map[int]int{101: 1, 102: 1}, byArea)
}

func (s *RepositorySuite) TestGetAreaSummary() {
	summary, err := s.evacRepo.GetAreaSummary(s.ctx, 101)
	s.Require().NoError(err)

	s.Equal(101, summary.AreaCode)
	s.InDelta(250000, summary.AreaM2, 0.001)
	s.Equal(1, summary.InstitutionsCount)
	s.Equal(2, summary.LodgingCount)
	s.Equal(2, summary.RestaurantsCount)
	s.Equal(1, summary.CafesCount)
	s.Equal(14, summary.TotalLodgingCapacity)
}

func (s *RepositorySuite) TestGetAreaSummary_UnknownArea() {
	_, err := s.evacRepo.GetAreaSummary(s.ctx, 999)
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeNotFound, appErr.Code)
}
