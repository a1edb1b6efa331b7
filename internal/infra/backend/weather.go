package backend

import (
	"context"

	"shamba/internal/domain/entity"
	"shamba/internal/domain/service"
)

// GetWeather returns the canned forecast for the given location. The location
// only influences the display name; the fixture is otherwise fixed.
func (a *Adapter) GetWeather(ctx context.Context, location entity.Location) service.Response[entity.WeatherData] {
	if err := a.delay(ctx, a.fetchLatency); err != nil {
		return service.Fail[entity.WeatherData](service.ReasonCancelled)
	}

	return service.Ok(weatherFixture(location, a.clock()), "")
}
