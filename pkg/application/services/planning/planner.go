package planning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/application/dto"
	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// Config holds the planning constants. They are passed in explicitly so the
// core stays pure and testable.
type Config struct {
	// LeadTimeDays is the fixed delay between placing an order and its
	// delivery.
	LeadTimeDays int
	// HorizonDays is the length of the forward planning window. It also
	// sets the length of the reference week of actual usage, which ends
	// the day before the horizon starts.
	HorizonDays int
}

// Validate checks the configuration for usable values
func (c Config) Validate() error {
	if c.LeadTimeDays < 0 {
		return fmt.Errorf("lead time days cannot be negative, got %d", c.LeadTimeDays)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("horizon days must be positive, got %d", c.HorizonDays)
	}
	return nil
}

// Planner builds the reorder plan: for each ingredient it simulates the
// horizon, finds the first stockout, and sizes a single order at the latest
// safe date to cover remaining need through horizon end.
type Planner struct {
	config    Config
	logger    zerolog.Logger
	purchases repositories.PurchaseRepository
	sales     repositories.SalesRepository
	forecasts repositories.ForecastRepository
	recipes   repositories.RecipeRepository
}

// NewPlanner creates a planner with the provided repositories
func NewPlanner(
	config Config,
	logger zerolog.Logger,
	purchases repositories.PurchaseRepository,
	sales repositories.SalesRepository,
	forecasts repositories.ForecastRepository,
	recipes repositories.RecipeRepository,
) (*Planner, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}
	return &Planner{
		config:    config,
		logger:    logger,
		purchases: purchases,
		sales:     sales,
		forecasts: forecasts,
		recipes:   recipes,
	}, nil
}

// BuildPlan runs the full planning pass for a horizon starting at
// horizonStart and returns the reorder plan plus the baseline comparison.
func (p *Planner) BuildPlan(ctx context.Context, horizonStart time.Time) (*dto.PlanResult, error) {
	horizon, err := entities.NewHorizon(horizonStart, p.config.HorizonDays)
	if err != nil {
		return nil, fmt.Errorf("invalid horizon: %w", err)
	}

	// Actual usage comes from the reference week immediately preceding the
	// horizon.
	refFrom := horizon.Start.AddDate(0, 0, -p.config.HorizonDays)
	refTo := horizon.Start.AddDate(0, 0, -1)
	sales, err := p.sales.GetSalesInRange(refFrom, refTo)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for reference week: %w", err)
	}

	actual, err := ExplodeSales(p.recipes, sales, p.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to expand sales into ingredient usage: %w", err)
	}

	forecasts, err := p.forecasts.GetForecasts()
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast: %w", err)
	}

	purchases, err := p.purchases.GetPurchases()
	if err != nil {
		return nil, fmt.Errorf("failed to load purchasing ledger: %w", err)
	}
	latest, err := p.purchases.GetLatestPurchases()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve latest purchases: %w", err)
	}

	resolver := NewUsageResolver(horizon, forecasts, actual)
	schedule := NewDeliverySchedule(purchases, p.config.LeadTimeDays)
	simulator := NewSimulator(horizon, resolver, schedule)

	var entries []entities.ReorderPlanEntry
	for _, ingredient := range p.allIngredients(resolver, latest) {
		entry, err := p.planIngredient(ingredient, simulator, schedule, latest[ingredient])
		if err != nil {
			return nil, fmt.Errorf("failed to plan %s: %w", ingredient, err)
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	sortEntries(entries)

	dynamicCost := decimal.Zero
	for _, entry := range entries {
		dynamicCost = dynamicCost.Add(entry.EstimatedCost)
	}

	baseline, baselineCost := BuildBaseline(latest, horizon, p.config.LeadTimeDays)

	result := &dto.PlanResult{
		RunID:        uuid.New(),
		GeneratedAt:  time.Now().UTC(),
		Horizon:      horizon,
		Entries:      entries,
		Baseline:     baseline,
		DynamicCost:  dynamicCost,
		BaselineCost: baselineCost,
		Savings:      baselineCost.Sub(dynamicCost),
	}

	p.logger.Info().
		Stringer("run_id", result.RunID).
		Int("reorders", len(entries)).
		Int("baseline_orders", len(baseline)).
		Str("dynamic_cost", dynamicCost.StringFixed(2)).
		Str("baseline_cost", baselineCost.StringFixed(2)).
		Str("savings", result.Savings.StringFixed(2)).
		Msg("reorder plan built")

	return result, nil
}

// planIngredient runs the single-order policy for one ingredient. It returns
// nil when the ingredient never stocks out inside the horizon; absence of an
// entry is the no-action-needed signal. Generalizing to multiple orders per
// ingredient would mean re-simulating here after each injected order.
func (p *Planner) planIngredient(
	ingredient entities.Ingredient,
	simulator *Simulator,
	schedule *DeliverySchedule,
	lastBuy *entities.PurchaseRecord,
) (*entities.ReorderPlanEntry, error) {
	startInventory := decimal.Zero
	if lastBuy != nil {
		startInventory = lastBuy.Qty
	}

	stockout, found := simulator.FirstStockout(ingredient, startInventory)
	if !found {
		return nil, nil
	}

	// Latest safe order date: any later and the delivery misses the
	// stockout.
	orderDate := stockout.AddDate(0, 0, -p.config.LeadTimeDays)
	deliveryDate := orderDate.AddDate(0, 0, p.config.LeadTimeDays)

	onHand := simulator.ProjectedOnHand(ingredient, startInventory, deliveryDate)
	need := simulator.RemainingNeed(ingredient, deliveryDate)

	// Only a positive projected level counts as credit. A deficit does not
	// inflate the order; it contributes zero.
	credit := onHand
	if credit.IsNegative() {
		credit = decimal.Zero
	}
	orderQty := need.Sub(credit)
	if orderQty.IsNegative() {
		orderQty = decimal.Zero
	}

	schedule.AddPlanned(deliveryDate, ingredient, orderQty)

	unit := ""
	unitCost := decimal.Zero
	supplier := "Unknown"
	if lastBuy != nil {
		unit = lastBuy.Unit
		unitCost = lastBuy.UnitCost
		supplier = lastBuy.Supplier
	}

	p.logger.Debug().
		Str("ingredient", string(ingredient)).
		Time("stockout", stockout).
		Time("order_date", orderDate).
		Str("order_qty", orderQty.String()).
		Msg("sized reorder")

	return entities.NewReorderPlanEntry(ingredient, orderDate, deliveryDate, orderQty, unit, unitCost, supplier, stockout)
}

// allIngredients unions the usage-signal ingredients with the ledger
// ingredients, sorted by name.
func (p *Planner) allIngredients(resolver *UsageResolver, latest map[entities.Ingredient]*entities.PurchaseRecord) []entities.Ingredient {
	seen := make(map[entities.Ingredient]bool)
	for _, ingredient := range resolver.Ingredients() {
		seen[ingredient] = true
	}
	for ingredient := range latest {
		seen[ingredient] = true
	}

	ingredients := make([]entities.Ingredient, 0, len(seen))
	for ingredient := range seen {
		ingredients = append(ingredients, ingredient)
	}
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i] < ingredients[j] })
	return ingredients
}

// sortEntries orders the plan by order date ascending, then estimated cost
// descending so urgent, expensive orders surface first. Ingredient name breaks
// remaining ties.
func sortEntries(entries []entities.ReorderPlanEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].OrderDate.Equal(entries[j].OrderDate) {
			return entries[i].OrderDate.Before(entries[j].OrderDate)
		}
		if cmp := entries[i].EstimatedCost.Cmp(entries[j].EstimatedCost); cmp != 0 {
			return cmp > 0
		}
		return entries[i].Ingredient < entries[j].Ingredient
	})
}
