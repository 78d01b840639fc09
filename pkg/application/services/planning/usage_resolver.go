package planning

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// UsageResolver picks one authoritative daily usage value per (date,
// ingredient). Priority is a hard waterfall: forecast, then actual usage from
// the reference week, then the ingredient's median actual usage, then zero.
// No interpolation or smoothing.
type UsageResolver struct {
	forecast map[time.Time]map[entities.Ingredient]decimal.Decimal
	actual   map[time.Time]map[entities.Ingredient]decimal.Decimal
	typical  map[entities.Ingredient]decimal.Decimal
}

// NewUsageResolver builds a resolver for the given horizon. The forecast
// series is remapped: its first len(horizon) distinct dates, in sorted order,
// align one-to-one onto the horizon dates. Actual usage records keep their own
// dates; the median fallback is computed per ingredient across all of its
// actual records.
func NewUsageResolver(horizon entities.Horizon, forecasts []*entities.ForecastRecord, actual []entities.DailyUsageRecord) *UsageResolver {
	r := &UsageResolver{
		forecast: make(map[time.Time]map[entities.Ingredient]decimal.Decimal),
		actual:   make(map[time.Time]map[entities.Ingredient]decimal.Decimal),
		typical:  make(map[entities.Ingredient]decimal.Decimal),
	}

	// Remap the first N distinct forecast dates onto the horizon dates.
	distinct := make(map[time.Time]bool)
	for _, f := range forecasts {
		distinct[entities.DateOf(f.Date)] = true
	}
	forecastDates := make([]time.Time, 0, len(distinct))
	for d := range distinct {
		forecastDates = append(forecastDates, d)
	}
	sort.Slice(forecastDates, func(i, j int) bool { return forecastDates[i].Before(forecastDates[j]) })

	horizonDates := horizon.Dates()
	dateMapping := make(map[time.Time]time.Time)
	for i, d := range forecastDates {
		if i >= len(horizonDates) {
			break
		}
		dateMapping[d] = horizonDates[i]
	}

	for _, f := range forecasts {
		mapped, ok := dateMapping[entities.DateOf(f.Date)]
		if !ok {
			continue
		}
		if r.forecast[mapped] == nil {
			r.forecast[mapped] = make(map[entities.Ingredient]decimal.Decimal)
		}
		r.forecast[mapped][f.Ingredient] = f.Qty
	}

	samples := make(map[entities.Ingredient][]decimal.Decimal)
	for _, u := range actual {
		d := entities.DateOf(u.Date)
		if r.actual[d] == nil {
			r.actual[d] = make(map[entities.Ingredient]decimal.Decimal)
		}
		r.actual[d][u.Ingredient] = r.actual[d][u.Ingredient].Add(u.Usage)
		samples[u.Ingredient] = append(samples[u.Ingredient], u.Usage)
	}
	for ingredient, values := range samples {
		r.typical[ingredient] = median(values)
	}

	return r
}

// DailyUsage resolves the usage for one (date, ingredient) cell and reports
// which signal supplied it.
func (r *UsageResolver) DailyUsage(date time.Time, ingredient entities.Ingredient) (decimal.Decimal, entities.UsageSource) {
	date = entities.DateOf(date)

	if qty, ok := r.forecast[date][ingredient]; ok {
		return qty, entities.SourceForecast
	}
	if qty, ok := r.actual[date][ingredient]; ok {
		return qty, entities.SourceActual
	}
	if qty, ok := r.typical[ingredient]; ok {
		return qty, entities.SourceTypical
	}
	return decimal.Zero, entities.SourceNone
}

// Ingredients returns every ingredient the resolver has seen in the forecast
// or actual usage series.
func (r *UsageResolver) Ingredients() []entities.Ingredient {
	seen := make(map[entities.Ingredient]bool)
	for _, byIngredient := range r.forecast {
		for ingredient := range byIngredient {
			seen[ingredient] = true
		}
	}
	for _, byIngredient := range r.actual {
		for ingredient := range byIngredient {
			seen[ingredient] = true
		}
	}

	ingredients := make([]entities.Ingredient, 0, len(seen))
	for ingredient := range seen {
		ingredients = append(ingredients, ingredient)
	}
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i] < ingredients[j] })
	return ingredients
}

// median returns the middle sample, averaging the two middle samples for an
// even count.
func median(values []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2))
}
