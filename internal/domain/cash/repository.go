package cash

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// SoldeCaisse aggregates the ledger over a filtered period
type SoldeCaisse struct {
	TotalEntrees decimal.Decimal
	TotalSorties decimal.Decimal
	Solde        decimal.Decimal
}

// MouvementRepository defines persistence operations for the cash ledger
type MouvementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MouvementCaisse, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]MouvementCaisse, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Solde(ctx context.Context, filter shared.Filter) (*SoldeCaisse, error)
	Save(ctx context.Context, mouvement *MouvementCaisse) error
	Delete(ctx context.Context, id uuid.UUID) error
}
