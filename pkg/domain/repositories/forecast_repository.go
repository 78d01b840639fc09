package repositories

import "github.com/vkarel/restock/pkg/domain/entities"

// ForecastRepository provides access to the ingredient demand forecast
type ForecastRepository interface {
	GetForecasts() ([]*entities.ForecastRecord, error)
	LoadForecasts(forecasts []*entities.ForecastRecord) error
}
