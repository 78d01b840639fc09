package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarel/restock/pkg/domain/entities"
)

// DeliverySchedule maps arrival dates to delivered quantities per ingredient.
// Known deliveries come from the purchasing ledger: each transaction lands
// lead-time days after its transaction date, and transactions for the same
// ingredient landing on the same date are summed. Planned deliveries from the
// reorder plan are tracked separately so the known timeline stays pristine for
// stockout detection.
type DeliverySchedule struct {
	known   map[time.Time]map[entities.Ingredient]decimal.Decimal
	planned map[time.Time]map[entities.Ingredient]decimal.Decimal
}

// NewDeliverySchedule builds the schedule from ledger transactions. Deliveries
// landing outside the horizon are kept; the simulator only ever queries dates
// inside it.
func NewDeliverySchedule(purchases []*entities.PurchaseRecord, leadTimeDays int) *DeliverySchedule {
	s := &DeliverySchedule{
		known:   make(map[time.Time]map[entities.Ingredient]decimal.Decimal),
		planned: make(map[time.Time]map[entities.Ingredient]decimal.Decimal),
	}
	for _, p := range purchases {
		arrival := entities.DateOf(p.TxnDate).AddDate(0, 0, leadTimeDays)
		if s.known[arrival] == nil {
			s.known[arrival] = make(map[entities.Ingredient]decimal.Decimal)
		}
		s.known[arrival][p.Ingredient] = s.known[arrival][p.Ingredient].Add(p.Qty)
	}
	return s
}

// QtyOn returns the known delivered quantity for an ingredient on a date.
func (s *DeliverySchedule) QtyOn(date time.Time, ingredient entities.Ingredient) decimal.Decimal {
	return s.known[entities.DateOf(date)][ingredient]
}

// AddPlanned records a planned delivery additively.
func (s *DeliverySchedule) AddPlanned(date time.Time, ingredient entities.Ingredient, qty decimal.Decimal) {
	date = entities.DateOf(date)
	if s.planned[date] == nil {
		s.planned[date] = make(map[entities.Ingredient]decimal.Decimal)
	}
	s.planned[date][ingredient] = s.planned[date][ingredient].Add(qty)
}

// PlannedOn returns the planned delivered quantity for an ingredient on a date.
func (s *DeliverySchedule) PlannedOn(date time.Time, ingredient entities.Ingredient) decimal.Decimal {
	return s.planned[entities.DateOf(date)][ingredient]
}
