package dto

// NearbyRequest carries the decoded proximity-search parameters. Semantic
// validation (ranges, allow-list) happens in the usecase, not the transport.
type NearbyRequest struct {
	Lat          float64
	Lon          float64
	RadiusMeters int
	Kind         string
}

// EvacuationRequest selects the areas to analyze. ResourceAreas only feed
// the advisory text.
type EvacuationRequest struct {
	EvacuateAreas []int  `json:"evacuate_areas" validate:"required,min=1"`
	ResourceAreas []int  `json:"resource_areas"`
	Scenario      string `json:"scenario"`
}

// FacilityTypesResponse lists the distinct facility types in the city.
type FacilityTypesResponse struct {
	Types []string `json:"types"`
}
