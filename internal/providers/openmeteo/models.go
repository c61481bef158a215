package openmeteo

// CurrentWeatherAPIResponse is the payload for current_weather=true
// requests. CurrentWeather is a pointer so a response that omits the
// block can be told apart from one with zero values.
type CurrentWeatherAPIResponse struct {
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	Timezone       string          `json:"timezone"`
	Elevation      float64         `json:"elevation"`
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Windspeed     float64 `json:"windspeed"`
	Winddirection float64 `json:"winddirection"`
	Weathercode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
	Time          string  `json:"time"`
}

// ForecastAPIResponse is the payload for daily forecast requests.
type ForecastAPIResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Daily     *DailyForecast `json:"daily"`
}

// DailyForecast holds parallel per-day arrays. All four must have the
// same length in a well-formed response.
type DailyForecast struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	Weathercode      []int     `json:"weathercode"`
}
