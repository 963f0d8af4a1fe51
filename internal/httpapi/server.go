package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"weather-app/internal/models"
	"weather-app/internal/state"
	"weather-app/internal/units"
	"weather-app/internal/weather"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	service     *weather.Service
	iconCDNBase string
	defaultCity string
	presets     []string
}

func NewServer(service *weather.Service, iconCDNBase, defaultCity string, presets []string) *Server {
	return &Server{
		service:     service,
		iconCDNBase: iconCDNBase,
		defaultCity: defaultCity,
		presets:     presets,
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/weather", s.handleWeather)
	r.Get("/weather/state", s.handleState)
	r.Get("/presets", s.handlePresets)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// handleWeather runs a fresh fetch cycle for the queried location and
// returns the rendered view. The location is a city name, a lat/lon pair,
// or, when neither is given, the configured default city.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q, ok := s.parseLocation(w, r)
	if !ok {
		return
	}
	unit := models.ParseUnit(r.URL.Query().Get("unit"))

	snap, err := s.service.Refresh(r.Context(), q)
	if err != nil && snap.Current == nil && len(snap.Daily) == 0 {
		// Nothing fetched before either, so there is no stale view to
		// keep showing.
		if strings.Contains(snap.CurrentErr, "status 404") {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "city not found"})
			return
		}
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to fetch weather"})
		return
	}

	// A failed cycle with prior data still renders: the errors ride along
	// in the view and the last successful data stays visible.
	writeJSON(w, http.StatusOK, s.renderView(snap, unit))
}

// handleState returns the last snapshot without contacting the upstream
// API. A failed cycle leaves the previously fetched data here, so the UI
// can keep showing it alongside the error.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	unit := models.ParseUnit(r.URL.Query().Get("unit"))
	snap := s.service.Store().Snapshot()
	if snap.QueryID == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no weather data fetched yet"})
		return
	}
	writeJSON(w, http.StatusOK, s.renderView(snap, unit))
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": s.defaultCity,
		"presets": s.presets,
	})
}

func (s *Server) parseLocation(w http.ResponseWriter, r *http.Request) (models.LocationQuery, bool) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	if latStr != "" || lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lat parameter"})
			return models.LocationQuery{}, false
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lon parameter"})
			return models.LocationQuery{}, false
		}
		return models.LocationQuery{Lat: lat, Lon: lon, HasCoords: true}, true
	}

	if city == "" {
		city = s.defaultCity
	}
	return models.LocationQuery{City: city}, true
}

// renderView applies all presentation-time transforms: unit conversion,
// local-time formatting, icon URL and flag lookup.
func (s *Server) renderView(snap state.Snapshot, unit models.Unit) WeatherView {
	view := WeatherView{
		Unit:        unit,
		UnitLabel:   units.Label(unit),
		CurrentErr:  snap.CurrentErr,
		ForecastErr: snap.ForecastErr,
	}

	if snap.Current != nil {
		view.Current = renderCurrent(*snap.Current, unit, s.iconCDNBase)
	}
	for _, day := range snap.Daily {
		view.Forecast = append(view.Forecast, renderDay(day, snap.ForecastOffset, unit, s.iconCDNBase))
	}
	return view
}
