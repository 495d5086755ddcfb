package profit

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// AnalyseRepository defines persistence operations for profit analyses
type AnalyseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AnalyseProfit, error)
	FindByNumero(ctx context.Context, numero string) (*AnalyseProfit, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]AnalyseProfit, error)
	FindByPeriode(ctx context.Context, annee, mois int, magasinID uuid.UUID) ([]AnalyseProfit, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, analyse *AnalyseProfit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RapportRepository defines persistence operations for monthly rollups
type RapportRepository interface {
	FindByPeriodeMagasin(ctx context.Context, annee, mois int, magasinID uuid.UUID) (*RapportProfitMensuel, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RapportProfitMensuel, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, rapport *RapportProfitMensuel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
