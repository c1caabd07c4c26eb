package domain

// ResourceKind identifies which physical table and schema registration a
// query targets. The set is closed and defined at registry-build time.
type ResourceKind string

const (
	KindLodging         ResourceKind = "lodging"
	KindHotel           ResourceKind = "hotel"
	KindInstitution     ResourceKind = "institution"
	KindDining          ResourceKind = "dining"
	KindCafe            ResourceKind = "cafe"
	KindCommunityCenter ResourceKind = "community_center"
	KindFacility        ResourceKind = "facility"
	KindStatisticalArea ResourceKind = "statistical_area"
)

// AllResourceKinds lists every registered kind, in route-documentation order.
var AllResourceKinds = []ResourceKind{
	KindLodging,
	KindHotel,
	KindInstitution,
	KindDining,
	KindCafe,
	KindCommunityCenter,
	KindFacility,
	KindStatisticalArea,
}

func (k ResourceKind) String() string {
	return string(k)
}

// ParseResourceKind maps a path segment onto a registered kind.
func ParseResourceKind(s string) (ResourceKind, bool) {
	kind := ResourceKind(s)
	for _, k := range AllResourceKinds {
		if k == kind {
			return kind, true
		}
	}
	return "", false
}
