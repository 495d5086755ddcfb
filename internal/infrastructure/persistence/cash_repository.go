package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/cash"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// GormMouvementCaisseRepository implements cash.MouvementRepository
type GormMouvementCaisseRepository struct {
	gormRepository[cash.MouvementCaisse]
}

// NewGormMouvementCaisseRepository creates a cash ledger repository
func NewGormMouvementCaisseRepository(db *Database) *GormMouvementCaisseRepository {
	return &GormMouvementCaisseRepository{newGormRepository[cash.MouvementCaisse](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"libelle", "observations"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true,
			"montant_entree": true, "montant_sortie": true,
		},
		defaultSort: "date",
	})}
}

// Solde sums the ledger over the filtered period. Absent sums coalesce
// to zero so an empty period yields a zero balance, never null.
func (r *GormMouvementCaisseRepository) Solde(ctx context.Context, filter shared.Filter) (*cash.SoldeCaisse, error) {
	var row struct {
		TotalEntrees decimal.Decimal
		TotalSorties decimal.Decimal
	}
	query := applyWhere(r.db.Session(ctx).Model(&cash.MouvementCaisse{}), filter, r.opts)
	if err := query.
		Select("COALESCE(SUM(montant_entree), 0) AS total_entrees, COALESCE(SUM(montant_sortie), 0) AS total_sorties").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &cash.SoldeCaisse{
		TotalEntrees: row.TotalEntrees,
		TotalSorties: row.TotalSorties,
		Solde:        row.TotalEntrees.Sub(row.TotalSorties),
	}, nil
}
