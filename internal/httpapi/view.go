package httpapi

import (
	"math"

	"weather-app/internal/icons"
	"weather-app/internal/localtime"
	"weather-app/internal/models"
	"weather-app/internal/units"
)

// WeatherView is the display-ready response for the UI. All temperatures
// are already converted into the requested unit and rounded.
type WeatherView struct {
	Unit        models.Unit    `json:"unit"`
	UnitLabel   string         `json:"unit_label"`
	Current     *CurrentView   `json:"current,omitempty"`
	Forecast    []ForecastView `json:"forecast,omitempty"`
	CurrentErr  string         `json:"current_error,omitempty"`
	ForecastErr string         `json:"forecast_error,omitempty"`
}

type CurrentView struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Flag        string `json:"flag,omitempty"`
	Date        string `json:"date"` // "Monday 01:00" in local time
	Description string `json:"description"`
	Temperature int    `json:"temperature"`
	FeelsLike   int    `json:"feels_like"`
	Humidity    int    `json:"humidity"`
	Wind        int    `json:"wind"`
	Icon        string `json:"icon"`
	IconURL     string `json:"icon_url"`
}

type ForecastView struct {
	Date        string `json:"date"` // local YYYY-MM-DD
	Day         string `json:"day"`  // "Tue"
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconURL     string `json:"icon_url"`
}

func renderCurrent(cur models.CurrentConditions, unit models.Unit, cdnBase string) *CurrentView {
	return &CurrentView{
		City:        cur.City,
		Country:     cur.Country,
		Flag:        icons.CountryFlag(cur.Country),
		Date:        localtime.FormatLocalDate(cur.ObservedAt, cur.TimezoneOffset),
		Description: cur.Description,
		Temperature: units.Convert(cur.TempC, unit),
		FeelsLike:   units.Convert(cur.FeelsLikeC, unit),
		Humidity:    cur.Humidity,
		Wind:        int(math.Round(cur.WindSpeed)),
		Icon:        icons.Name(cur.Icon),
		IconURL:     icons.URL(cdnBase, cur.Icon),
	}
}

func renderDay(day models.DailyForecast, offsetSeconds int, unit models.Unit, cdnBase string) ForecastView {
	return ForecastView{
		Date:        day.DateKey,
		Day:         localtime.FormatDay(day.Timestamp, offsetSeconds),
		TempMin:     units.Convert(day.TempMin, unit),
		TempMax:     units.Convert(day.TempMax, unit),
		Description: day.Description,
		Icon:        icons.Name(day.Icon),
		IconURL:     icons.URL(cdnBase, day.Icon),
	}
}
