package types

// ResolvedLocation is a coordinate pair with a human-readable name.
// DisplayName falls back to the formatted coordinate string when the
// geocoder has no name for the point.
type ResolvedLocation struct {
	Coordinates Coords `json:"coordinates"`
	DisplayName string `json:"display_name"`
}

func NewResolvedLocation(latitude, longitude float64, displayName string) ResolvedLocation {
	coords := NewCoords(latitude, longitude)
	if displayName == "" {
		displayName = coords.String()
	}
	return ResolvedLocation{
		Coordinates: coords,
		DisplayName: displayName,
	}
}
