// Package state holds the latest fetched weather view as one explicit
// snapshot instead of scattered mutable variables. The current-conditions
// and forecast halves of a fetch cycle complete independently and each
// writes only its own slice of the snapshot.
package state

import (
	"sync"
	"time"

	"weather-app/internal/models"
)

// Snapshot is a copy of the store's contents at one point in time.
type Snapshot struct {
	QueryID        uint64                    `json:"query_id"`
	Query          models.LocationQuery      `json:"-"`
	Current        *models.CurrentConditions `json:"current,omitempty"`
	Daily          []models.DailyForecast    `json:"daily,omitempty"`
	ForecastOffset int                       `json:"forecast_offset"`
	CurrentErr     string                    `json:"current_error,omitempty"`
	ForecastErr    string                    `json:"forecast_error,omitempty"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// Store serializes updates from concurrent fetch handlers. Each Begin call
// issues a new monotonically increasing query id; Apply calls carrying a
// stale id are dropped, so a response from a superseded search can never
// overwrite fresher data.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
}

func New() *Store {
	return &Store{}
}

// Begin starts a new fetch cycle for query and returns its id. Per-slice
// errors are cleared; previously fetched data stays visible until the new
// cycle replaces it.
func (s *Store) Begin(query models.LocationQuery) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.QueryID++
	s.snap.Query = query
	s.snap.CurrentErr = ""
	s.snap.ForecastErr = ""
	return s.snap.QueryID
}

// ApplyCurrent records the outcome of the current-conditions request for
// cycle id. A failure keeps the prior conditions visible and records the
// error instead.
func (s *Store) ApplyCurrent(id uint64, cur models.CurrentConditions, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.snap.QueryID {
		return
	}
	if err != nil {
		s.snap.CurrentErr = err.Error()
		return
	}
	s.snap.Current = &cur
	s.snap.UpdatedAt = time.Now()
}

// ApplyForecast records the outcome of the forecast request for cycle id.
func (s *Store) ApplyForecast(id uint64, daily []models.DailyForecast, offsetSeconds int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.snap.QueryID {
		return
	}
	if err != nil {
		s.snap.ForecastErr = err.Error()
		return
	}
	s.snap.Daily = daily
	s.snap.ForecastOffset = offsetSeconds
	s.snap.UpdatedAt = time.Now()
}

// Snapshot returns a copy of the store's contents.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	if s.snap.Current != nil {
		cur := *s.snap.Current
		snap.Current = &cur
	}
	snap.Daily = append([]models.DailyForecast(nil), s.snap.Daily...)
	return snap
}
