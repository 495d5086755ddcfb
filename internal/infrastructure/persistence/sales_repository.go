package persistence

import (
	"context"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
)

// GormMagasinRepository implements sales.MagasinRepository
type GormMagasinRepository struct {
	gormRepository[sales.Magasin]
}

// NewGormMagasinRepository creates a store repository
func NewGormMagasinRepository(db *Database) *GormMagasinRepository {
	return &GormMagasinRepository{newGormRepository[sales.Magasin](db, queryOptions{
		searchColumns: []string{"nom", "adresse", "responsable"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true,
		},
		defaultSort: "nom",
	})}
}

// GormClientRepository implements sales.ClientRepository
type GormClientRepository struct {
	gormRepository[sales.Client]
}

// NewGormClientRepository creates a client repository
func NewGormClientRepository(db *Database) *GormClientRepository {
	return &GormClientRepository{newGormRepository[sales.Client](db, queryOptions{
		searchColumns: []string{"nom", "prenom", "telephone"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true, "prenom": true,
		},
		defaultSort: "nom",
	})}
}

// GormCommercialRepository implements sales.CommercialRepository
type GormCommercialRepository struct {
	gormRepository[sales.Commercial]
}

// NewGormCommercialRepository creates a sales rep repository
func NewGormCommercialRepository(db *Database) *GormCommercialRepository {
	return &GormCommercialRepository{newGormRepository[sales.Commercial](db, queryOptions{
		searchColumns: []string{"nom", "prenom", "telephone"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true, "magasin_id": true,
			"actif": true, "date_embauche": true,
		},
		defaultSort: "nom",
	})}
}

// GormVenteRepository implements sales.VenteRepository
type GormVenteRepository struct {
	gormRepository[sales.Vente]
}

// NewGormVenteRepository creates a sale repository
func NewGormVenteRepository(db *Database) *GormVenteRepository {
	return &GormVenteRepository{newGormRepository[sales.Vente](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"magasin_id": true, "client_id": true, "produit_id": true,
			"type_vente": true, "total_vente": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a sale by its reference number
func (r *GormVenteRepository) FindByNumero(ctx context.Context, numero string) (*sales.Vente, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a sale carries the reference number
func (r *GormVenteRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every sale numero sharing the prefix
func (r *GormVenteRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}
