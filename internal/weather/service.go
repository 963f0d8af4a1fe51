// Package weather runs fetch cycles: the two independent upstream requests
// for a location query, forecast aggregation, and state updates.
package weather

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"weather-app/internal/forecast"
	"weather-app/internal/models"
	"weather-app/internal/observability"
	"weather-app/internal/state"

	"github.com/google/uuid"
)

// Provider fetches weather data from an upstream API.
type Provider interface {
	Current(ctx context.Context, q models.LocationQuery) (models.CurrentConditions, error)
	Forecast(ctx context.Context, q models.LocationQuery) (models.ForecastBundle, error)
}

// ErrFetchFailed is returned when neither upstream request of a cycle
// succeeded.
var ErrFetchFailed = errors.New("weather fetch failed")

type Service struct {
	provider Provider
	store    *state.Store
	maxDays  int
}

func NewService(provider Provider, store *state.Store, maxDays int) *Service {
	if maxDays <= 0 {
		maxDays = forecast.DefaultDays
	}
	return &Service{provider: provider, store: store, maxDays: maxDays}
}

// Store exposes the underlying snapshot store for read-only endpoints.
func (s *Service) Store() *state.Store {
	return s.store
}

// Refresh runs one fetch cycle for q: current conditions and forecast are
// requested concurrently and each result lands in its own slice of the
// state, guarded by the cycle's query id so responses from a superseded
// search are dropped. Returns the resulting snapshot; the error is non-nil
// only when both requests failed.
func (s *Service) Refresh(ctx context.Context, q models.LocationQuery) (state.Snapshot, error) {
	id := s.store.Begin(q)
	cycle := uuid.NewString()
	slog.Info("fetch cycle started", "cycle", cycle, "query_id", id, "city", q.City, "has_coords", q.HasCoords)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		cur, err := s.provider.Current(ctx, q)
		observability.UpstreamCounter.WithLabelValues("current", outcome(err)).Inc()
		if err != nil {
			slog.Warn("current conditions fetch failed", "cycle", cycle, "error", err)
		}
		s.store.ApplyCurrent(id, cur, err)
	}()

	go func() {
		defer wg.Done()
		bundle, err := s.provider.Forecast(ctx, q)
		observability.UpstreamCounter.WithLabelValues("forecast", outcome(err)).Inc()
		if err != nil {
			slog.Warn("forecast fetch failed", "cycle", cycle, "error", err)
			s.store.ApplyForecast(id, nil, 0, err)
			return
		}
		daily := forecast.BuildDaily(bundle.Samples, bundle.TimezoneOffset, s.maxDays)
		s.store.ApplyForecast(id, daily, bundle.TimezoneOffset, nil)
	}()

	wg.Wait()

	snap := s.store.Snapshot()
	if snap.QueryID == id && snap.CurrentErr != "" && snap.ForecastErr != "" {
		return snap, ErrFetchFailed
	}
	return snap, nil
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
