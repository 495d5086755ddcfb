package report

import (
	"context"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Reporter aggregates one module's records over a filtered set: the
// summed totals, and grouped sums by day or by month. Group rows are
// returned most-recent-first for display; callers reverse for the
// chronological export ordering through Filter.Chronological.
type Reporter[S any] interface {
	Resume(ctx context.Context, filter shared.Filter) (*S, error)
	ParJour(ctx context.Context, filter shared.Filter) ([]PointJournalier, error)
	ParMois(ctx context.Context, filter shared.Filter) ([]PointMensuel, error)
}

// Per-module reporter aliases, implemented by the persistence layer
type (
	VenteReporter     = Reporter[ResumeVentes]
	LivraisonReporter = Reporter[ResumeLivraisons]
	CreditReporter    = Reporter[ResumeCredits]
	ChargeReporter    = Reporter[ResumeCharges]
	ProfitReporter    = Reporter[ResumeProfits]
)
