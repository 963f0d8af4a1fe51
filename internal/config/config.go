package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	OpenWeatherAPIKey string
	OpenWeatherURL    string
	IconCDNBase       string
	RequestTimeout    time.Duration
	RateLimitRPS      float64
	RateLimitBurst    int
	ForecastDays      int
	DefaultCity       string
	PresetCities      []string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8095"),
		OpenWeatherAPIKey: strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		OpenWeatherURL:    getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		IconCDNBase:       getEnv("ICON_CDN_BASE", "https://img.icons8.com/emoji/96"),
		RequestTimeout:    parseDuration(getEnv("REQUEST_TIMEOUT", "15s"), 15*time.Second),
		RateLimitRPS:      parseFloat(getEnv("RATE_LIMIT_RPS", "1"), 1),
		RateLimitBurst:    parseInt(getEnv("RATE_LIMIT_BURST", "5"), 5),
		ForecastDays:      parseInt(getEnv("FORECAST_DAYS", "5"), 5),
		DefaultCity:       getEnv("DEFAULT_CITY", "New York"),
		PresetCities:      splitList(getEnv("PRESET_CITIES", "Lisbon,Paris,Sydney,San Francisco")),
	}

	slog.Info("weather-app config loaded",
		"port", cfg.Port,
		"forecast_days", cfg.ForecastDays,
		"default_city", cfg.DefaultCity,
		"rate_limit_rps", cfg.RateLimitRPS)
	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseInt(val string, def int) int {
	if n, err := strconv.Atoi(val); err == nil && n > 0 {
		return n
	}
	return def
}

func parseFloat(val string, def float64) float64 {
	if f, err := strconv.ParseFloat(val, 64); err == nil && f > 0 {
		return f
	}
	return def
}

func parseDuration(val string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(val); err == nil && d > 0 {
		return d
	}
	return def
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
