package icons

import (
	"strings"
	"testing"
)

func TestNameCoversAllDocumentedCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"01d", "clear-day"},
		{"01n", "clear-night"},
		{"02d", "partly-cloudy"},
		{"02n", "partly-cloudy"},
		{"03d", "cloudy"},
		{"04n", "cloudy"},
		{"09d", "rain"},
		{"10n", "rain"},
		{"11d", "thunderstorm"},
		{"13n", "snow"},
		{"50d", "fog"},
	}
	for _, tt := range tests {
		if got := Name(tt.code); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNameFallback(t *testing.T) {
	for _, code := range []string{"", "99x", "abc", "7"} {
		got := Name(code)
		if got == "" {
			t.Fatalf("Name(%q) returned empty identifier", code)
		}
		if got != "partly-cloudy" {
			t.Errorf("Name(%q) = %q, want fallback partly-cloudy", code, got)
		}
	}
}

func TestURL(t *testing.T) {
	if got := URL(DefaultCDNBase, "01d"); got != "https://img.icons8.com/emoji/96/sun-emoji.png" {
		t.Errorf("unexpected clear-day URL: %s", got)
	}
	if got := URL(DefaultCDNBase, "01n"); !strings.HasSuffix(got, "/crescent-moon-emoji.png") {
		t.Errorf("expected moon icon for clear nights, got %s", got)
	}
	// Unknown codes still produce a URL.
	if got := URL(DefaultCDNBase, "99x"); !strings.HasSuffix(got, "/sun-behind-cloud.png") {
		t.Errorf("expected fallback image, got %s", got)
	}
	// A trailing slash on the base must not double up.
	if got := URL("https://cdn.example/icons/", "11d"); got != "https://cdn.example/icons/cloud-with-lightning-and-rain.png" {
		t.Errorf("unexpected URL with trailing slash base: %s", got)
	}
}

func TestCountryFlag(t *testing.T) {
	if got := CountryFlag("US"); got != "\U0001F1FA\U0001F1F8" {
		t.Errorf("CountryFlag(US) = %q", got)
	}
	if got := CountryFlag("de"); got != "\U0001F1E9\U0001F1EA" {
		t.Errorf("CountryFlag(de) = %q, lowercase input should work", got)
	}
	for _, bad := range []string{"", "USA", "1A"} {
		if got := CountryFlag(bad); got != "" {
			t.Errorf("CountryFlag(%q) = %q, want empty", bad, got)
		}
	}
}
