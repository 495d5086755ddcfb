package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CreditRepository defines persistence operations for customer credits
type CreditRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditClient, error)
	FindByNumero(ctx context.Context, numero string) (*CreditClient, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]CreditClient, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, credit *CreditClient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaiementRepository defines persistence operations for payments.
// SumByCredit is the authoritative source for a credit's paid total.
type PaiementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Paiement, error)
	FindByCredit(ctx context.Context, creditID uuid.UUID) ([]Paiement, error)
	SumByCredit(ctx context.Context, creditID uuid.UUID) (decimal.Decimal, error)
	Save(ctx context.Context, paiement *Paiement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
