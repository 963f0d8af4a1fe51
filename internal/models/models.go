package models

// Unit selects the temperature scale used at render time. Stored values
// are always Celsius.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit maps a query-string value onto a Unit, defaulting to Celsius.
func ParseUnit(s string) Unit {
	if s == string(UnitFahrenheit) {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// LocationQuery is either a free-text city name or a lat/lon pair. It is
// ephemeral and drives exactly one fetch cycle.
type LocationQuery struct {
	City      string
	Lat       float64
	Lon       float64
	HasCoords bool
}

// CurrentConditions is a snapshot weather reading for "now" at a location.
// Temperatures are Celsius, wind speed is the raw metric value from the API.
type CurrentConditions struct {
	City           string  `json:"city"`
	Country        string  `json:"country"`
	TimezoneOffset int     `json:"timezone_offset"` // seconds east of UTC
	ObservedAt     int64   `json:"observed_at"`     // unix seconds, UTC
	TempC          float64 `json:"temp_c"`
	FeelsLikeC     float64 `json:"feels_like_c"`
	Humidity       int     `json:"humidity"`
	WindSpeed      float64 `json:"wind_speed"`
	Description    string  `json:"description"`
	Icon           string  `json:"icon"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// ForecastSample is one 3-hour-resolution prediction as returned by the API.
type ForecastSample struct {
	Timestamp   int64   `json:"timestamp"` // unix seconds, UTC
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// ForecastBundle is a raw forecast response: the location's timezone offset
// plus the chronological sample list.
type ForecastBundle struct {
	TimezoneOffset int              `json:"timezone_offset"`
	Samples        []ForecastSample `json:"samples"`
}

// DailyForecast is one aggregated forecast day. TempMin and TempMax are the
// true extrema across the day's samples; icon and description come from the
// sample closest to local noon. TempMin <= TempMax always holds.
type DailyForecast struct {
	DateKey     string  `json:"date"`      // local YYYY-MM-DD
	Timestamp   int64   `json:"timestamp"` // representative sample's unix time
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}
