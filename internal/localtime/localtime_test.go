package localtime

import "testing"

// 2024-01-01T00:00:00Z, a Monday.
const newYear2024 = int64(1704067200)

func TestFormatLocalDate(t *testing.T) {
	tests := []struct {
		name      string
		timestamp int64
		offset    int
		want      string
	}{
		{"positive offset crosses the hour", newYear2024, 3600, "Monday 01:00"},
		{"zero offset", newYear2024, 0, "Monday 00:00"},
		{"negative offset crosses the day", newYear2024, -3600, "Sunday 23:00"},
		{"half-hour offset", newYear2024, 5*3600 + 1800, "Monday 05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocalDate(tt.timestamp, tt.offset); got != tt.want {
				t.Errorf("FormatLocalDate(%d, %d) = %q, want %q", tt.timestamp, tt.offset, got, tt.want)
			}
		})
	}
}

func TestFormatDay(t *testing.T) {
	if got := FormatDay(newYear2024, 0); got != "Mon" {
		t.Errorf("expected Mon, got %q", got)
	}
	if got := FormatDay(newYear2024+86400, 0); got != "Tue" {
		t.Errorf("expected Tue, got %q", got)
	}
	if got := FormatDay(newYear2024, -3600); got != "Sun" {
		t.Errorf("expected Sun for negative offset, got %q", got)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(newYear2024, 0); got != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %q", got)
	}
	// 23:00 UTC with +2h is the next local day.
	if got := DateKey(newYear2024+23*3600, 7200); got != "2024-01-02" {
		t.Errorf("expected 2024-01-02, got %q", got)
	}
}

func TestHour(t *testing.T) {
	if got := Hour(newYear2024+14*3600, 0); got != 14 {
		t.Errorf("expected hour 14, got %d", got)
	}
	if got := Hour(newYear2024, -3600); got != 23 {
		t.Errorf("expected hour 23, got %d", got)
	}
}
