package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// MagasinRepository defines persistence operations for stores
type MagasinRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Magasin, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Magasin, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, magasin *Magasin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommercialRepository defines persistence operations for sales reps
type CommercialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Commercial, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Commercial, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, commercial *Commercial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VenteRepository defines persistence operations for sales
type VenteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vente, error)
	FindByNumero(ctx context.Context, numero string) (*Vente, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vente, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, vente *Vente) error
	Delete(ctx context.Context, id uuid.UUID) error
}
