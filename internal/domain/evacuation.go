package domain

// AreaCapacity is the evacuation capacity aggregate for one statistical area.
type AreaCapacity struct {
	AreaCode        int `json:"area_code"`
	LodgingCapacity int `json:"lodging_capacity"`
	TotalCapacity   int `json:"total_capacity"`
}

// AreaNeed is the estimated evacuation need for one statistical area,
// derived from institution counts and the configured per-institution
// population coefficients.
type AreaNeed struct {
	AreaCode                 int `json:"area_code"`
	InstitutionsCount        int `json:"institutions_count"`
	EstimatedChildren        int `json:"estimated_children"`
	EstimatedStaff           int `json:"estimated_staff"`
	TotalEstimatedPopulation int `json:"total_estimated_population"`
}

// EvacuationAnalysis is the full capacity-vs-need result. Per-area slices
// follow the caller's requested area order, with zero-valued rows for areas
// absent from the source tables. CapacityDeficit is negative on shortfall.
type EvacuationAnalysis struct {
	EvacuateAreas   []int          `json:"evacuate_areas"`
	TotalNeed       int            `json:"total_need"`
	TotalCapacity   int            `json:"total_capacity"`
	CapacityDeficit int            `json:"capacity_deficit"`
	CapacityByArea  []AreaCapacity `json:"capacity_by_area"`
	NeedByArea      []AreaNeed     `json:"need_by_area"`
	Recommendations []string       `json:"recommendations"`
	Scenario        string         `json:"scenario"`
}

// AreaCapacityRow is one row of the lodging capacity aggregate query.
type AreaCapacityRow struct {
	AreaCode     int `db:"area_code"`
	ListingCount int `db:"listing_count"`
	Capacity     int `db:"capacity"`
}

// AreaInstitutionRow is one row of the institution count aggregate query.
type AreaInstitutionRow struct {
	AreaCode          int `db:"area_code"`
	InstitutionsCount int `db:"institutions_count"`
}

// AreaSummary aggregates the resource inventory of a single area.
type AreaSummary struct {
	AreaCode             int     `json:"area_code"`
	AreaM2               float64 `json:"area_m2"`
	InstitutionsCount    int     `json:"institutions_count"`
	LodgingCount         int     `json:"lodging_count"`
	RestaurantsCount     int     `json:"restaurants_count"`
	CafesCount           int     `json:"cafes_count"`
	TotalLodgingCapacity int     `json:"total_lodging_capacity"`
}
