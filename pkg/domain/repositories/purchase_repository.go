package repositories

import "github.com/vkarel/restock/pkg/domain/entities"

// PurchaseRepository provides access to the purchasing ledger
type PurchaseRepository interface {
	GetPurchases() ([]*entities.PurchaseRecord, error)

	// GetLatestPurchases returns the most recent ledger row per ingredient,
	// by transaction date. Later-loaded rows win ties.
	GetLatestPurchases() (map[entities.Ingredient]*entities.PurchaseRecord, error)

	LoadPurchases(purchases []*entities.PurchaseRecord) error
}
