// Package owm is a client for the OpenWeatherMap REST API: current
// conditions plus the free-tier 5-day/3-hour forecast, both in metric
// units.
package owm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-app/internal/models"
)

// DefaultBaseURL is the production API host. Tests and config inject their
// own.
const DefaultBaseURL = "https://api.openweathermap.org"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("API returned status %d", e.Status)
}

// IsNotFound reports whether err is the API rejecting an unknown location.
func IsNotFound(err error) bool {
	var se StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// currentResponse mirrors /data/2.5/weather. Missing fields decode to zero
// values so a partial payload degrades per-field instead of failing.
type currentResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

// forecastResponse mirrors /data/2.5/forecast.
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
}

// Current fetches current conditions for a city name or a lat/lon pair.
func (c *Client) Current(ctx context.Context, q models.LocationQuery) (models.CurrentConditions, error) {
	var resp currentResponse
	if err := c.getJSON(ctx, "/data/2.5/weather", q, &resp); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("fetching current weather: %w", err)
	}

	cur := models.CurrentConditions{
		City:           resp.Name,
		Country:        resp.Sys.Country,
		TimezoneOffset: resp.Timezone,
		ObservedAt:     resp.Dt,
		TempC:          resp.Main.Temp,
		FeelsLikeC:     resp.Main.FeelsLike,
		Humidity:       resp.Main.Humidity,
		WindSpeed:      resp.Wind.Speed,
		Lat:            resp.Coord.Lat,
		Lon:            resp.Coord.Lon,
	}
	if len(resp.Weather) > 0 {
		cur.Description = resp.Weather[0].Description
		cur.Icon = resp.Weather[0].Icon
	}
	return cur, nil
}

// Forecast fetches the 3-hour sample list for a city name or a lat/lon
// pair. Samples come back in the API's chronological order.
func (c *Client) Forecast(ctx context.Context, q models.LocationQuery) (models.ForecastBundle, error) {
	var resp forecastResponse
	if err := c.getJSON(ctx, "/data/2.5/forecast", q, &resp); err != nil {
		return models.ForecastBundle{}, fmt.Errorf("fetching forecast: %w", err)
	}

	bundle := models.ForecastBundle{
		TimezoneOffset: resp.City.Timezone,
		Samples:        make([]models.ForecastSample, 0, len(resp.List)),
	}
	for _, item := range resp.List {
		sample := models.ForecastSample{
			Timestamp: item.Dt,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
		}
		if len(item.Weather) > 0 {
			sample.Icon = item.Weather[0].Icon
			sample.Description = item.Weather[0].Description
		}
		bundle.Samples = append(bundle.Samples, sample)
	}
	return bundle, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q models.LocationQuery, out any) error {
	params := url.Values{}
	if q.HasCoords {
		params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	} else {
		params.Set("q", q.City)
	}
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusError{Status: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
