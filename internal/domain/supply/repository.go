package supply

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// FournisseurRepository defines persistence operations for suppliers
type FournisseurRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Fournisseur, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Fournisseur, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, fournisseur *Fournisseur) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProduitRepository defines persistence operations for products
type ProduitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Produit, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Produit, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, produit *Produit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LivraisonRepository defines persistence operations for deliveries
type LivraisonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Livraison, error)
	FindByNumero(ctx context.Context, numero string) (*Livraison, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Livraison, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, livraison *Livraison) error
	Delete(ctx context.Context, id uuid.UUID) error
}
