// Package schema is the single source of truth for how each resource kind is
// queried: its table, filterable fields, default ordering, and GeoJSON
// property projection. Both the predicate compiler and the collection
// fetcher consult it; no caller re-declares this per kind.
package schema

import (
	"fmt"

	"github.com/citystrata-service/internal/domain"
)

// FieldType is the semantic type of a filter value.
type FieldType int

const (
	FieldInt FieldType = iota
	FieldFloat
	FieldText
	FieldBool
)

// Operator is the comparison a filter field supports. Threshold operators
// use inclusive bounds.
type Operator int

const (
	OpEqual Operator = iota // column = value
	OpMin                   // column >= value
	OpMax                   // column <= value
	OpAnyOf                 // column = ANY(values), from a comma-delimited list
)

// FieldSpec declares one queryable field of a resource kind.
type FieldSpec struct {
	Name   string
	Column string
	Type   FieldType
	Op     Operator
}

// ColumnKind tells the fetcher how to scan a projected column. Numeric and
// boolean columns stay nullable end to end.
type ColumnKind int

const (
	ColText ColumnKind = iota
	ColInt
	ColFloat
	ColBool
	// ColPropsJSON is a jsonb object column whose keys are merged into the
	// feature properties instead of nesting under one key.
	ColPropsJSON
)

// ColumnSpec maps one select expression onto a GeoJSON property.
type ColumnSpec struct {
	Property string
	Expr     string
	Kind     ColumnKind
}

// ResourceSchema is the registry entry for one resource kind.
type ResourceSchema struct {
	Kind           domain.ResourceKind
	Table          string
	GeometryColumn string

	// Closable kinds carry a permanently_closed flag and are always
	// queried with the closed rows excluded.
	Closable bool

	// Nearby marks kinds on the proximity-search allow-list.
	Nearby bool

	// KeyColumn enables single-entity lookup when non-empty.
	KeyColumn string
	KeyType   FieldType

	OrderBy string
	Filters []FieldSpec
	Columns []ColumnSpec
}

// FilterSpec returns the spec for a filter field name, if declared.
func (s *ResourceSchema) FilterSpec(name string) (FieldSpec, bool) {
	for _, f := range s.Filters {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

var registry = map[domain.ResourceKind]*ResourceSchema{
	domain.KindLodging: {
		Kind:           domain.KindLodging,
		Table:          "lodging_listings",
		GeometryColumn: "location",
		Nearby:         true,
		OrderBy:        "person_capacity DESC NULLS LAST, rating_value DESC NULLS LAST",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "min_capacity", Column: "person_capacity", Type: FieldInt, Op: OpMin},
			{Name: "min_rating", Column: "rating_value", Type: FieldFloat, Op: OpMin},
			{Name: "max_price", Column: "price_per_night", Type: FieldFloat, Op: OpMax},
		},
		Columns: []ColumnSpec{
			{Property: "uuid", Expr: "uuid::text", Kind: ColText},
			{Property: "listing_id", Expr: "listing_id", Kind: ColInt},
			{Property: "title", Expr: "title", Kind: ColText},
			{Property: "url", Expr: "url", Kind: ColText},
			{Property: "description", Expr: "description", Kind: ColText},
			{Property: "price_qualifier", Expr: "price_qualifier", Kind: ColText},
			{Property: "price_numeric", Expr: "price_numeric", Kind: ColFloat},
			{Property: "num_nights", Expr: "num_nights", Kind: ColInt},
			{Property: "price_per_night", Expr: "price_per_night", Kind: ColFloat},
			{Property: "rating_value", Expr: "rating_value", Kind: ColFloat},
			{Property: "person_capacity", Expr: "person_capacity", Kind: ColInt},
			{Property: "location_subtitle", Expr: "location_subtitle", Kind: ColText},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
		},
	},
	domain.KindHotel: {
		Kind:           domain.KindHotel,
		Table:          "hotel_listings",
		GeometryColumn: "location",
		OrderBy:        "rating_value DESC NULLS LAST, name",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "min_rating", Column: "rating_value", Type: FieldFloat, Op: OpMin},
			{Name: "hotel_type", Column: "hotel_type", Type: FieldText, Op: OpEqual},
		},
		Columns: []ColumnSpec{
			{Property: "uuid", Expr: "uuid::text", Kind: ColText},
			{Property: "hotel_id", Expr: "hotel_id", Kind: ColText},
			{Property: "name", Expr: "name", Kind: ColText},
			{Property: "url", Expr: "url", Kind: ColText},
			{Property: "description", Expr: "description", Kind: ColText},
			{Property: "hotel_type", Expr: "hotel_type", Kind: ColText},
			{Property: "rating_value", Expr: "rating_value", Kind: ColFloat},
			{Property: "full_address", Expr: "full_address", Kind: ColText},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
		},
	},
	domain.KindInstitution: {
		Kind:           domain.KindInstitution,
		Table:          "educational_institutions",
		GeometryColumn: "location",
		Nearby:         true,
		KeyColumn:      "institution_code",
		KeyType:        FieldText,
		OrderBy:        "institution_name",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "phase", Column: "education_phase", Type: FieldText, Op: OpEqual},
			{Name: "education_type", Column: "type_of_education", Type: FieldText, Op: OpEqual},
		},
		Columns: []ColumnSpec{
			{Property: "id", Expr: "id::text", Kind: ColText},
			{Property: "institution_code", Expr: "institution_code", Kind: ColText},
			{Property: "institution_name", Expr: "institution_name", Kind: ColText},
			{Property: "address", Expr: "address", Kind: ColText},
			{Property: "full_address", Expr: "full_address", Kind: ColText},
			{Property: "type_of_supervision", Expr: "type_of_supervision", Kind: ColText},
			{Property: "type_of_education", Expr: "type_of_education", Kind: ColText},
			{Property: "education_phase", Expr: "education_phase", Kind: ColText},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
		},
	},
	domain.KindDining: {
		Kind:           domain.KindDining,
		Table:          "restaurants",
		GeometryColumn: "location",
		Closable:       true,
		Nearby:         true,
		OrderBy:        "total_score DESC NULLS LAST, title",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "category", Column: "category_name", Type: FieldText, Op: OpEqual},
			{Name: "min_score", Column: "total_score", Type: FieldFloat, Op: OpMin},
		},
		Columns: diningColumns,
	},
	domain.KindCafe: {
		Kind:           domain.KindCafe,
		Table:          "coffee_shops",
		GeometryColumn: "location",
		Closable:       true,
		Nearby:         true,
		OrderBy:        "total_score DESC NULLS LAST, title",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "min_score", Column: "total_score", Type: FieldFloat, Op: OpMin},
		},
		Columns: diningColumns,
	},
	domain.KindCommunityCenter: {
		Kind:           domain.KindCommunityCenter,
		Table:          "community_centers",
		GeometryColumn: "location",
		OrderBy:        "name",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "min_facility_area", Column: "facility_area", Type: FieldInt, Op: OpMin},
			{Name: "min_occupancy", Column: "occupancy", Type: FieldInt, Op: OpMin},
		},
		Columns: []ColumnSpec{
			{Property: "uuid", Expr: "uuid::text", Kind: ColText},
			{Property: "name", Expr: "name", Kind: ColText},
			{Property: "full_address", Expr: "full_address", Kind: ColText},
			{Property: "person_in_charge", Expr: "person_in_charge", Kind: ColText},
			{Property: "phone_number", Expr: "phone_number", Kind: ColText},
			{Property: "activity_days", Expr: "activity_days", Kind: ColText},
			{Property: "facility_area", Expr: "facility_area", Kind: ColInt},
			{Property: "occupancy", Expr: "occupancy", Kind: ColInt},
			{Property: "activity_rooms", Expr: "activity_rooms", Kind: ColInt},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
		},
	},
	domain.KindFacility: {
		Kind:           domain.KindFacility,
		Table:          "city_facilities",
		GeometryColumn: "location",
		OrderBy:        "facility_type, name NULLS LAST",
		Filters: []FieldSpec{
			{Name: "area", Column: "area_code", Type: FieldInt, Op: OpEqual},
			{Name: "facility_types", Column: "facility_type", Type: FieldText, Op: OpAnyOf},
		},
		Columns: []ColumnSpec{
			{Property: "uuid", Expr: "uuid::text", Kind: ColText},
			{Property: "name", Expr: "name", Kind: ColText},
			{Property: "facility_type", Expr: "facility_type", Kind: ColText},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
		},
	},
	domain.KindStatisticalArea: {
		Kind:           domain.KindStatisticalArea,
		Table:          "statistical_areas",
		GeometryColumn: "geom",
		KeyColumn:      "area_code",
		KeyType:        FieldInt,
		OrderBy:        "area_code",
		Filters:        nil,
		Columns: []ColumnSpec{
			{Property: "id", Expr: "id::text", Kind: ColText},
			{Property: "area_code", Expr: "area_code", Kind: ColInt},
			{Property: "area_m2", Expr: "area_m2", Kind: ColFloat},
			{Property: "source", Expr: "source", Kind: ColText},
			{Property: "", Expr: "COALESCE(properties, '{}'::jsonb)", Kind: ColPropsJSON},
		},
	},
}

// Restaurants and coffee shops share one physical layout.
var diningColumns = []ColumnSpec{
	{Property: "uuid", Expr: "uuid::text", Kind: ColText},
	{Property: "place_id", Expr: "place_id::text", Kind: ColText},
	{Property: "title", Expr: "title", Kind: ColText},
	{Property: "description", Expr: "description", Kind: ColText},
	{Property: "category_name", Expr: "category_name", Kind: ColText},
	{Property: "total_score", Expr: "total_score", Kind: ColFloat},
	{Property: "temporarily_closed", Expr: "temporarily_closed", Kind: ColBool},
	{Property: "permanently_closed", Expr: "permanently_closed", Kind: ColBool},
	{Property: "url", Expr: "url", Kind: ColText},
	{Property: "website", Expr: "website", Kind: ColText},
	{Property: "street", Expr: "street", Kind: ColText},
	{Property: "area_code", Expr: "area_code", Kind: ColInt},
}

// Describe returns the registry entry for a kind. A missing registration is
// a configuration error, not a request error: every declared kind must be
// registered.
func Describe(kind domain.ResourceKind) (*ResourceSchema, error) {
	s, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("schema registry: no registration for resource kind %q", kind)
	}
	return s, nil
}
