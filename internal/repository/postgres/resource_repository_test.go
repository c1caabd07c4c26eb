package postgres_test

import (
	"github.com/citystrata-service/internal/domain"
	"github.com/citystrata-service/internal/pkg/errors"
)

func (s *RepositorySuite) titles(fc *domain.FeatureCollection) []string {
	out := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		title, _ := f.Properties["title"].(string)
		out = append(out, title)
	}
	return out
}

func (s *RepositorySuite) TestGetCollection_DefaultOrderingAndCityScope() {
	fc, err := s.resourceRepo.GetCollection(s.ctx, domain.KindLodging, nil)
	s.Require().NoError(err)

	// Capacity-descending default order; the other-city row never appears.
	s.Equal([]string{"Room A", "Room B", "Room C"}, s.titles(fc))

	for _, f := range fc.Features {
		s.Require().NotNil(f.Geometry)
		s.Equal("Point", f.Geometry.Type)
	}
}

func (s *RepositorySuite) TestGetCollection_NullValuesStayNull() {
	fc, err := s.resourceRepo.GetCollection(s.ctx, domain.KindLodging, map[string]string{"min_capacity": "4"})
	s.Require().NoError(err)
	s.Require().Len(fc.Features, 2)

	roomB := fc.Features[1].Properties
	s.Equal("Room B", roomB["title"])

	value, present := roomB["rating_value"]
	s.True(present, "null columns keep their property key")
	s.Nil(value)
}

func (s *RepositorySuite) TestGetCollection_ThresholdFiltersInclusive() {
	fc, err := s.resourceRepo.GetCollection(s.ctx, domain.KindLodging, map[string]string{"min_capacity": "4"})
	s.Require().NoError(err)
	s.Equal([]string{"Room A", "Room B"}, s.titles(fc))

	fc, err = s.resourceRepo.GetCollection(s.ctx, domain.KindLodging, map[string]string{"max_price": "150"})
	s.Require().NoError(err)
	s.Equal([]string{"Room B", "Room C"}, s.titles(fc))
}

func (s *RepositorySuite) TestGetCollection_UnknownFilterRejected() {
	_, err := s.resourceRepo.GetCollection(s.ctx, domain.KindLodging, map[string]string{"color": "red"})
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidFilter, appErr.Code)
}

func (s *RepositorySuite) TestGetCollection_PermanentlyClosedExcluded() {
	fc, err := s.resourceRepo.GetCollection(s.ctx, domain.KindDining, nil)
	s.Require().NoError(err)
	s.Equal([]string{"Open Grill"}, s.titles(fc))
}

func (s *RepositorySuite) TestGetCollection_AreaPropertiesMerged() {
	fc, err := s.resourceRepo.GetCollection(s.ctx, domain.KindStatisticalArea, nil)
	s.Require().NoError(err)
	s.Require().Len(fc.Features, 2)

	north := fc.Features[0].Properties
	s.Equal(int64(101), north["area_code"])
	s.Equal("north", north["district"], "jsonb keys merge into top-level properties")
	s.Equal("Polygon", fc.Features[0].Geometry.Type)

	// NULL properties column merges nothing and breaks nothing.
	s.Equal(int64(102), fc.Features[1].Properties["area_code"])
}

func (s *RepositorySuite) TestGetByKey_Institution() {
	feature, err := s.resourceRepo.GetByKey(s.ctx, domain.KindInstitution, "612040")
	s.Require().NoError(err)
	s.Equal("Coral Reef Elementary", feature.Properties["institution_name"])
}

func (s *RepositorySuite) TestGetByKey_NotFound() {
	_, err := s.resourceRepo.GetByKey(s.ctx, domain.KindInstitution, "999999")
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeNotFound, appErr.Code)
}

func (s *RepositorySuite) TestGetByKey_IntegerKeyValidation() {
	feature, err := s.resourceRepo.GetByKey(s.ctx, domain.KindStatisticalArea, "101")
	s.Require().NoError(err)
	s.Equal(int64(101), feature.Properties["area_code"])

	_, err = s.resourceRepo.GetByKey(s.ctx, domain.KindStatisticalArea, "abc")
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidFilter, appErr.Code)
}

func (s *RepositorySuite) TestGetByKey_KindWithoutKeyRejected() {
	_, err := s.resourceRepo.GetByKey(s.ctx, domain.KindLodging, "101")
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidFilter, appErr.Code)
}

func (s *RepositorySuite) TestGetNearby_RadiusAndOrdering() {
	fc, err := s.resourceRepo.GetNearby(s.ctx, domain.KindLodging, baseLat, baseLon, 1000, 100)
	s.Require().NoError(err)

	// Room C sits about 5 km out and must not appear at a 1 km radius.
	s.Require().Equal([]string{"Room A", "Room B"}, s.titles(fc))

	distA, ok := fc.Features[0].Properties["distance_meters"].(float64)
	s.Require().True(ok)
	distB, ok := fc.Features[1].Properties["distance_meters"].(float64)
	s.Require().True(ok)

	s.InDelta(50, distA, 15)
	s.InDelta(500, distB, 30)
	s.Less(distA, distB)
}

func (s *RepositorySuite) TestGetNearby_WideRadiusReachesAll() {
	fc, err := s.resourceRepo.GetNearby(s.ctx, domain.KindLodging, baseLat, baseLon, 10000, 100)
	s.Require().NoError(err)
	s.Equal([]string{"Room A", "Room B", "Room C"}, s.titles(fc))
}

func (s *RepositorySuite) TestGetNearby_LimitCapsResults() {
	fc, err := s.resourceRepo.GetNearby(s.ctx, domain.KindLodging, baseLat, baseLon, 10000, 1)
	s.Require().NoError(err)
	s.Equal([]string{"Room A"}, s.titles(fc))
}

func (s *RepositorySuite) TestGetNearby_ClosedRowsExcluded() {
	fc, err := s.resourceRepo.GetNearby(s.ctx, domain.KindDining, baseLat, baseLon, 1000, 100)
	s.Require().NoError(err)
	s.Equal([]string{"Open Grill"}, s.titles(fc))
}

func (s *RepositorySuite) TestGetNearby_KindOutsideAllowListRejected() {
	_, err := s.resourceRepo.GetNearby(s.ctx, domain.KindStatisticalArea, baseLat, baseLon, 1000, 100)
	s.Require().Error(err)

	appErr, ok := errors.IsAppError(err)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidFilter, appErr.Code)
}

func (s *RepositorySuite) TestGetFacilityTypes_DistinctAndScoped() {
	types, err := s.resourceRepo.GetFacilityTypes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"park", "pharmacy", "school"}, types)
}
