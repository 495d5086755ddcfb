package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// MouvementRepository defines persistence operations for stock movements
type MouvementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MouvementStock, error)
	FindByNumero(ctx context.Context, numero string) (*MouvementStock, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]MouvementStock, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, mouvement *MouvementStock) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockActuelRepository defines persistence operations for current stock.
// FindByMagasinProduit backs the cross-entity check that a sale, credit or
// movement only references a product actually stocked in the store.
type StockActuelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockActuel, error)
	FindByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (*StockActuel, error)
	ExistsByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StockActuel, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, stock *StockActuel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventaireRepository defines persistence operations for inventories
type InventaireRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Inventaire, error)
	FindByNumero(ctx context.Context, numero string) (*Inventaire, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Inventaire, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, inventaire *Inventaire) error
	Delete(ctx context.Context, id uuid.UUID) error
}
