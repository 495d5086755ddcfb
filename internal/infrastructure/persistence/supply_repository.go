package persistence

import (
	"context"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// GormFournisseurRepository implements supply.FournisseurRepository
type GormFournisseurRepository struct {
	gormRepository[supply.Fournisseur]
}

// NewGormFournisseurRepository creates a supplier repository
func NewGormFournisseurRepository(db *Database) *GormFournisseurRepository {
	return &GormFournisseurRepository{newGormRepository[supply.Fournisseur](db, queryOptions{
		searchColumns: []string{"nom", "telephone"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true,
		},
		defaultSort: "nom",
	})}
}

// GormProduitRepository implements supply.ProduitRepository
type GormProduitRepository struct {
	gormRepository[supply.Produit]
}

// NewGormProduitRepository creates a product repository
func NewGormProduitRepository(db *Database) *GormProduitRepository {
	return &GormProduitRepository{newGormRepository[supply.Produit](db, queryOptions{
		searchColumns: []string{"nom", "description"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true, "prix_vente_conseille": true,
		},
		defaultSort: "nom",
	})}
}

// GormLivraisonRepository implements supply.LivraisonRepository
type GormLivraisonRepository struct {
	gormRepository[supply.Livraison]
}

// NewGormLivraisonRepository creates a delivery repository
func NewGormLivraisonRepository(db *Database) *GormLivraisonRepository {
	return &GormLivraisonRepository{newGormRepository[supply.Livraison](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero", "observations"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"fournisseur_id": true, "produit_id": true, "montant_total_achat": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a delivery by its reference number
func (r *GormLivraisonRepository) FindByNumero(ctx context.Context, numero string) (*supply.Livraison, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a delivery carries the reference number
func (r *GormLivraisonRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every delivery numero sharing the prefix
func (r *GormLivraisonRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}
