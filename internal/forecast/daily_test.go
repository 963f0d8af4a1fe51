package forecast

import (
	"testing"

	"weather-app/internal/models"
)

// Monday 2024-01-01 00:00:00 UTC.
const monMidnight = int64(1704067200)

const (
	hour = int64(3600)
	day  = 24 * hour
)

func sample(ts int64, tempMin, tempMax float64, icon, desc string) models.ForecastSample {
	return models.ForecastSample{Timestamp: ts, TempMin: tempMin, TempMax: tempMax, Icon: icon, Description: desc}
}

func TestBuildDailyDropsTodayAndAggregates(t *testing.T) {
	samples := []models.ForecastSample{
		sample(monMidnight, 10, 10, "01n", "clear sky"),
		sample(monMidnight+12*hour, 18, 18, "01d", "clear sky"),
		sample(monMidnight+21*hour, 12, 12, "04n", "overcast clouds"),
		sample(monMidnight+day+12*hour, 20, 20, "10d", "light rain"),
	}

	daily := BuildDaily(samples, 0, 5)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day after dropping today, got %d", len(daily))
	}

	tue := daily[0]
	if tue.DateKey != "2024-01-02" {
		t.Errorf("expected date 2024-01-02, got %s", tue.DateKey)
	}
	if tue.TempMin != 20 || tue.TempMax != 20 {
		t.Errorf("expected temps 20/20, got %v/%v", tue.TempMin, tue.TempMax)
	}
	if tue.Icon != "10d" || tue.Description != "light rain" {
		t.Errorf("unexpected representative: %s %q", tue.Icon, tue.Description)
	}
	if tue.Timestamp != monMidnight+day+12*hour {
		t.Errorf("expected representative timestamp of Tue noon, got %d", tue.Timestamp)
	}
}

func TestBuildDailyTrueExtrema(t *testing.T) {
	// Two Tuesday samples whose min/max straddle each other: the daily
	// record must combine extrema across samples, not pick one sample's
	// pair.
	samples := []models.ForecastSample{
		sample(monMidnight, 5, 6, "01d", "clear sky"),
		sample(monMidnight+day+6*hour, 3, 9, "01d", "clear sky"),
		sample(monMidnight+day+15*hour, 7, 14, "04d", "overcast clouds"),
	}

	daily := BuildDaily(samples, 0, 5)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].TempMin != 3 {
		t.Errorf("expected daily min 3, got %v", daily[0].TempMin)
	}
	if daily[0].TempMax != 14 {
		t.Errorf("expected daily max 14, got %v", daily[0].TempMax)
	}
}

func TestBuildDailyRepresentativeNearestNoon(t *testing.T) {
	samples := []models.ForecastSample{
		sample(monMidnight, 0, 0, "01n", "today filler"),
		sample(monMidnight+day+11*hour, 10, 12, "02d", "few clouds"),
		sample(monMidnight+day+14*hour, 11, 13, "10d", "light rain"),
	}

	daily := BuildDaily(samples, 0, 5)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	// Hour 11 is distance 1 from noon, hour 14 is distance 2.
	if daily[0].Icon != "02d" {
		t.Errorf("expected 11:00 sample as representative, got icon %s", daily[0].Icon)
	}
}

func TestBuildDailyRepresentativeTieKeepsFirst(t *testing.T) {
	samples := []models.ForecastSample{
		sample(monMidnight, 0, 0, "01n", "today filler"),
		sample(monMidnight+day+11*hour, 10, 12, "02d", "few clouds"),
		sample(monMidnight+day+13*hour, 11, 13, "11d", "thunderstorm"),
	}

	daily := BuildDaily(samples, 0, 5)
	// Both are distance 1 from noon; the earlier one keeps priority.
	if daily[0].Icon != "02d" {
		t.Errorf("expected first-encountered sample to win the tie, got icon %s", daily[0].Icon)
	}
}

func TestBuildDailyDayCountAndOrder(t *testing.T) {
	// 7 distinct days of samples: output is capped at 5, ascending,
	// starting the day after the earliest.
	var samples []models.ForecastSample
	for d := int64(0); d < 7; d++ {
		samples = append(samples, sample(monMidnight+d*day+12*hour, float64(d), float64(d+5), "01d", "clear sky"))
	}

	daily := BuildDaily(samples, 0, 5)
	if len(daily) != 5 {
		t.Fatalf("expected 5 days, got %d", len(daily))
	}
	want := []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06"}
	for i, rec := range daily {
		if rec.DateKey != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], rec.DateKey)
		}
		if rec.TempMin > rec.TempMax {
			t.Errorf("day %d: tempMin %v > tempMax %v", i, rec.TempMin, rec.TempMax)
		}
	}
}

func TestBuildDailyFewDistinctDays(t *testing.T) {
	oneDay := []models.ForecastSample{
		sample(monMidnight+9*hour, 4, 8, "03d", "scattered clouds"),
		sample(monMidnight+12*hour, 6, 11, "03d", "scattered clouds"),
	}
	if got := BuildDaily(oneDay, 0, 5); len(got) != 0 {
		t.Errorf("expected empty output for a single-day input, got %d records", len(got))
	}
	if got := BuildDaily(nil, 0, 5); len(got) != 0 {
		t.Errorf("expected empty output for empty input, got %d records", len(got))
	}
}

func TestBuildDailyOffsetShiftsDayBoundary(t *testing.T) {
	// Mon 23:00 UTC is Tue 01:00 at +2h, so with the offset applied the
	// sample belongs to Tuesday and Monday's filler gets dropped instead.
	samples := []models.ForecastSample{
		sample(monMidnight+12*hour, 1, 2, "01d", "today filler"),
		sample(monMidnight+23*hour, 7, 9, "13n", "snow"),
	}

	daily := BuildDaily(samples, 7200, 5)
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].DateKey != "2024-01-02" {
		t.Errorf("expected the 23:00 UTC sample under 2024-01-02, got %s", daily[0].DateKey)
	}
	if daily[0].Icon != "13n" {
		t.Errorf("unexpected representative icon %s", daily[0].Icon)
	}
}
