// Package forecast collapses 3-hour forecast samples into one record per
// local calendar day.
package forecast

import (
	"sort"

	"weather-app/internal/localtime"
	"weather-app/internal/models"
)

// DefaultDays is how many forecast days are kept after dropping today.
const DefaultDays = 5

type dayGroup struct {
	rep     models.ForecastSample
	score   int // distance of rep's local hour from noon
	tempMin float64
	tempMax float64
}

// BuildDaily groups samples by local calendar date and produces one
// DailyForecast per day:
//
//   - tempMin/tempMax are the true extrema across all of the day's samples
//   - icon and description come from the sample whose local hour is closest
//     to noon; on a tie the earlier sample keeps priority
//   - the first (earliest) day is dropped since the current-conditions view
//     already covers it, and at most maxDays further days are returned in
//     ascending date order
//
// Fewer than two distinct days yields a short or empty result, never an
// error.
func BuildDaily(samples []models.ForecastSample, offsetSeconds, maxDays int) []models.DailyForecast {
	if maxDays <= 0 {
		maxDays = DefaultDays
	}

	grouped := make(map[string]*dayGroup)
	for _, s := range samples {
		key := localtime.DateKey(s.Timestamp, offsetSeconds)
		score := noonDistance(localtime.Hour(s.Timestamp, offsetSeconds))

		g, ok := grouped[key]
		if !ok {
			grouped[key] = &dayGroup{rep: s, score: score, tempMin: s.TempMin, tempMax: s.TempMax}
			continue
		}
		if s.TempMin < g.tempMin {
			g.tempMin = s.TempMin
		}
		if s.TempMax > g.tempMax {
			g.tempMax = s.TempMax
		}
		// Strict less-than: the first sample at a given distance wins.
		if score < g.score {
			g.score = score
			g.rep = s
		}
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Skip "today", keep the next maxDays days.
	if len(keys) > 0 {
		keys = keys[1:]
	}
	if len(keys) > maxDays {
		keys = keys[:maxDays]
	}

	daily := make([]models.DailyForecast, 0, len(keys))
	for _, key := range keys {
		g := grouped[key]
		daily = append(daily, models.DailyForecast{
			DateKey:     key,
			Timestamp:   g.rep.Timestamp,
			TempMin:     g.tempMin,
			TempMax:     g.tempMax,
			Icon:        g.rep.Icon,
			Description: g.rep.Description,
		})
	}
	return daily
}

func noonDistance(hour int) int {
	if hour > 12 {
		return hour - 12
	}
	return 12 - hour
}
