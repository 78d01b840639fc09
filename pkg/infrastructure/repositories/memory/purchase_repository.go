package memory

import (
	"github.com/vkarel/restock/pkg/domain/entities"
	"github.com/vkarel/restock/pkg/domain/repositories"
)

// PurchaseRepository provides in-memory purchasing ledger storage
type PurchaseRepository struct {
	purchases []*entities.PurchaseRecord
}

// NewPurchaseRepository creates a new in-memory purchase repository
func NewPurchaseRepository(expectedRows int) *PurchaseRepository {
	return &PurchaseRepository{
		purchases: make([]*entities.PurchaseRecord, 0, expectedRows),
	}
}

// Verify interface compliance
var _ repositories.PurchaseRepository = (*PurchaseRepository)(nil)

// LoadPurchases loads ledger rows into the repository
func (r *PurchaseRepository) LoadPurchases(purchases []*entities.PurchaseRecord) error {
	r.purchases = append(r.purchases, purchases...)
	return nil
}

// AddPurchase adds a single ledger row to the repository
func (r *PurchaseRepository) AddPurchase(purchase entities.PurchaseRecord) {
	r.purchases = append(r.purchases, &purchase)
}

// GetPurchases returns all ledger rows in load order
func (r *PurchaseRepository) GetPurchases() ([]*entities.PurchaseRecord, error) {
	return r.purchases, nil
}

// GetLatestPurchases returns the most recent ledger row per ingredient by
// transaction date. Later-loaded rows win ties, so reloading a newer bank file
// after an older one behaves like the newer file taking precedence.
func (r *PurchaseRepository) GetLatestPurchases() (map[entities.Ingredient]*entities.PurchaseRecord, error) {
	latest := make(map[entities.Ingredient]*entities.PurchaseRecord)
	for _, p := range r.purchases {
		current, exists := latest[p.Ingredient]
		if !exists || !p.TxnDate.Before(current.TxnDate) {
			latest[p.Ingredient] = p
		}
	}
	return latest, nil
}
