package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
)

// GormMouvementStockRepository implements stock.MouvementRepository
type GormMouvementStockRepository struct {
	gormRepository[stock.MouvementStock]
}

// NewGormMouvementStockRepository creates a stock movement repository
func NewGormMouvementStockRepository(db *Database) *GormMouvementStockRepository {
	return &GormMouvementStockRepository{newGormRepository[stock.MouvementStock](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"magasin_id": true, "produit_id": true, "stock_final": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a movement by its reference number
func (r *GormMouvementStockRepository) FindByNumero(ctx context.Context, numero string) (*stock.MouvementStock, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a movement carries the reference number
func (r *GormMouvementStockRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every movement numero sharing the prefix
func (r *GormMouvementStockRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// GormStockActuelRepository implements stock.StockActuelRepository
type GormStockActuelRepository struct {
	gormRepository[stock.StockActuel]
}

// NewGormStockActuelRepository creates a current stock repository
func NewGormStockActuelRepository(db *Database) *GormStockActuelRepository {
	return &GormStockActuelRepository{newGormRepository[stock.StockActuel](db, queryOptions{
		sortFields: map[string]bool{
			"id": true, "created_at": true, "magasin_id": true, "produit_id": true,
			"quantite_actuelle": true, "valeur_stock": true,
		},
		defaultSort: "created_at",
	})}
}

// FindByMagasinProduit finds the current stock of one product in one store
func (r *GormStockActuelRepository) FindByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (*stock.StockActuel, error) {
	var entity stock.StockActuel
	if err := r.db.Session(ctx).
		Where("magasin_id = ? AND produit_id = ?", magasinID, produitID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsByMagasinProduit backs the cross-entity check that a sale, credit
// or movement only references a product stocked in the store
func (r *GormStockActuelRepository) ExistsByMagasinProduit(ctx context.Context, magasinID, produitID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Session(ctx).Model(&stock.StockActuel{}).
		Where("magasin_id = ? AND produit_id = ?", magasinID, produitID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormInventaireRepository implements stock.InventaireRepository
type GormInventaireRepository struct {
	gormRepository[stock.Inventaire]
}

// NewGormInventaireRepository creates an inventory repository
func NewGormInventaireRepository(db *Database) *GormInventaireRepository {
	return &GormInventaireRepository{newGormRepository[stock.Inventaire](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero", "responsable"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"magasin_id": true, "statut": true,
		},
		defaultSort: "date",
	})}
}

// FindByID loads an inventory with its lines
func (r *GormInventaireRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Inventaire, error) {
	var entity stock.Inventaire
	if err := r.db.Session(ctx).Preload("Lignes").First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindByNumero loads an inventory with its lines by reference number
func (r *GormInventaireRepository) FindByNumero(ctx context.Context, numero string) (*stock.Inventaire, error) {
	var entity stock.Inventaire
	if err := r.db.Session(ctx).Preload("Lignes").First(&entity, "numero = ?", numero).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsByNumero reports whether an inventory carries the reference number
func (r *GormInventaireRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every inventory numero sharing the prefix
func (r *GormInventaireRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// Save persists the inventory and its lines together
func (r *GormInventaireRepository) Save(ctx context.Context, inventaire *stock.Inventaire) error {
	return r.db.Session(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(inventaire).Error
}
