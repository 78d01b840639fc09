package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// Simulator walks one ingredient's inventory timeline across the horizon,
// applying known deliveries and resolved daily usage in chronological order.
// Each ingredient's walk is independent of every other ingredient's.
type Simulator struct {
	horizon  entities.Horizon
	usage    *UsageResolver
	schedule *DeliverySchedule
}

// NewSimulator creates a simulator over the given horizon
func NewSimulator(horizon entities.Horizon, usage *UsageResolver, schedule *DeliverySchedule) *Simulator {
	return &Simulator{
		horizon:  horizon,
		usage:    usage,
		schedule: schedule,
	}
}

// FirstStockout returns the first horizon date on which inventory goes
// negative given only the known deliveries, and false when the ingredient
// survives the whole horizon.
func (s *Simulator) FirstStockout(ingredient entities.Ingredient, startInventory decimal.Decimal) (time.Time, bool) {
	return s.firstStockout(ingredient, startInventory, false)
}

// FirstStockoutWithPlanned is FirstStockout with planned deliveries applied as
// well. Used to verify that a sized order actually covers the horizon.
func (s *Simulator) FirstStockoutWithPlanned(ingredient entities.Ingredient, startInventory decimal.Decimal) (time.Time, bool) {
	return s.firstStockout(ingredient, startInventory, true)
}

func (s *Simulator) firstStockout(ingredient entities.Ingredient, startInventory decimal.Decimal, includePlanned bool) (time.Time, bool) {
	inventory := startInventory
	for _, date := range s.horizon.Dates() {
		inventory = inventory.Add(s.schedule.QtyOn(date, ingredient))
		if includePlanned {
			inventory = inventory.Add(s.schedule.PlannedOn(date, ingredient))
		}
		usage, _ := s.usage.DailyUsage(date, ingredient)
		inventory = inventory.Sub(usage)
		if inventory.IsNegative() {
			return date, true
		}
	}
	return time.Time{}, false
}

// ProjectedOnHand replays the timeline over every horizon date strictly before
// cutoff and returns the projected inventory level the morning the cutoff date
// begins. The running level is not clamped, so an already-overdrawn ingredient
// yields a negative result.
func (s *Simulator) ProjectedOnHand(ingredient entities.Ingredient, startInventory decimal.Decimal, cutoff time.Time) decimal.Decimal {
	cutoff = entities.DateOf(cutoff)
	inventory := startInventory
	for _, date := range s.horizon.Dates() {
		if !date.Before(cutoff) {
			break
		}
		usage, _ := s.usage.DailyUsage(date, ingredient)
		inventory = inventory.Add(s.schedule.QtyOn(date, ingredient)).Sub(usage)
	}
	return inventory
}

// RemainingNeed sums resolved daily usage over horizon dates on or after from.
func (s *Simulator) RemainingNeed(ingredient entities.Ingredient, from time.Time) decimal.Decimal {
	from = entities.DateOf(from)
	need := decimal.Zero
	for _, date := range s.horizon.Dates() {
		if date.Before(from) {
			continue
		}
		usage, _ := s.usage.DailyUsage(date, ingredient)
		need = need.Add(usage)
	}
	return need
}
