package owm

import (
	"context"
	"fmt"

	"weather-app/internal/models"

	"golang.org/x/time/rate"
)

// Limited wraps a weather provider with token-bucket rate limiting so the
// app stays inside the API's free-tier call budget. Current and forecast
// calls share one bucket since they hit the same quota.
type Limited struct {
	provider interface {
		Current(ctx context.Context, q models.LocationQuery) (models.CurrentConditions, error)
		Forecast(ctx context.Context, q models.LocationQuery) (models.ForecastBundle, error)
	}
	limiter *rate.Limiter
}

// NewLimited wraps provider with a limiter allowing rps requests per second
// (fractional values allowed) and bursts up to burst.
func NewLimited(provider *Client, rps float64, burst int) *Limited {
	return &Limited{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (l *Limited) Current(ctx context.Context, q models.LocationQuery) (models.CurrentConditions, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return l.provider.Current(ctx, q)
}

func (l *Limited) Forecast(ctx context.Context, q models.LocationQuery) (models.ForecastBundle, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return models.ForecastBundle{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return l.provider.Forecast(ctx, q)
}
