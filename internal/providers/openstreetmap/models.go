package openstreetmap

// SearchAPIResult is one candidate match from the /search endpoint.
// Nominatim returns lat/lon as strings.
type SearchAPIResult struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   int      `json:"place_rank"`
	Importance  float64  `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Boundingbox []string `json:"boundingbox"`
}

// ReverseAPIResponse is the /reverse endpoint payload.
type ReverseAPIResponse struct {
	PlaceId     int     `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmId       int     `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	PlaceRank   int     `json:"place_rank"`
	Importance  float64 `json:"importance"`
	Addresstype string  `json:"addresstype"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		County       string `json:"county"`
		State        string `json:"state"`
		ISO31662Lvl4 string `json:"ISO3166-2-lvl4"`
		Country      string `json:"country"`
		CountryCode  string `json:"country_code"`
	} `json:"address"`
	Boundingbox []string `json:"boundingbox"`

	// Nominatim reports "Unable to geocode" here instead of a non-200
	// status when the point has no address.
	Error string `json:"error"`
}
