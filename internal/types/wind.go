package types

// Wind holds a wind observation. Open-Meteo reports speed in km/h and
// direction in degrees; the cardinal label is derived for display.
type Wind struct {
	SpeedKmh          float64 `json:"speed_kmh"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

var cardinals = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func NewWind(speedKmh, directionDegrees float64) Wind {
	index := int(directionDegrees/22.5+.5) % 16 // .5 for rounding
	if index < 0 {
		index += 16
	}
	return Wind{
		SpeedKmh:          speedKmh,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinals[index],
	}
}
