package memory

import (
	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// ForecastRepository provides in-memory demand forecast storage
type ForecastRepository struct {
	forecasts []*entities.ForecastRecord
}

// NewForecastRepository creates a new in-memory forecast repository
func NewForecastRepository(expectedRows int) *ForecastRepository {
	return &ForecastRepository{
		forecasts: make([]*entities.ForecastRecord, 0, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.ForecastRepository = (*ForecastRepository)(nil)

// LoadForecasts loads forecast rows into the repository
func (r *ForecastRepository) LoadForecasts(forecasts []*entities.ForecastRecord) error {
	r.forecasts = append(r.forecasts, forecasts...)
	return nil
}

// AddForecast adds a single forecast row to the repository
func (r *ForecastRepository) AddForecast(forecast entities.ForecastRecord) {
	r.forecasts = append(r.forecasts, &forecast)
}

// GetForecasts returns all forecast rows in load order
func (r *ForecastRepository) GetForecasts() ([]*entities.ForecastRecord, error) {
	return r.forecasts, nil
}
