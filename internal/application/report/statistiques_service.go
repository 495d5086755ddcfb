package report

import (
	"context"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/report"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// StatistiquesService serves the per-module summaries and their daily and
// monthly groupings
type StatistiquesService struct {
	ventes     report.VenteReporter
	livraisons report.LivraisonReporter
	credits    report.CreditReporter
	charges    report.ChargeReporter
	profits    report.ProfitReporter
}

// NewStatistiquesService creates a new StatistiquesService
func NewStatistiquesService(ventes report.VenteReporter, livraisons report.LivraisonReporter, credits report.CreditReporter, charges report.ChargeReporter, profits report.ProfitReporter) *StatistiquesService {
	return &StatistiquesService{
		ventes:     ventes,
		livraisons: livraisons,
		credits:    credits,
		charges:    charges,
		profits:    profits,
	}
}

// statistiques runs the three aggregate queries of one reporter over a
// single filtered set
func statistiques[S any](ctx context.Context, reporter report.Reporter[S], filter shared.Filter) (*S, []PointJournalierResponse, []PointMensuelResponse, error) {
	resume, err := reporter.Resume(ctx, filter)
	if err != nil {
		return nil, nil, nil, err
	}
	parJour, err := reporter.ParJour(ctx, filter)
	if err != nil {
		return nil, nil, nil, err
	}
	parMois, err := reporter.ParMois(ctx, filter)
	if err != nil {
		return nil, nil, nil, err
	}
	return resume, toPointsJournaliers(parJour), toPointsMensuels(parMois), nil
}

// Ventes aggregates the sales set
func (s *StatistiquesService) Ventes(ctx context.Context, filter StatistiquesFilter) (*StatistiquesResponse[ResumeVentesResponse], error) {
	resume, parJour, parMois, err := statistiques(ctx, s.ventes, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return &StatistiquesResponse[ResumeVentesResponse]{
		Resume: ResumeVentesResponse{
			NbVentes:      resume.NbVentes,
			TotalVentes:   resume.TotalVentes,
			TotalQuantite: resume.TotalQuantite,
		},
		ParJour: parJour,
		ParMois: parMois,
	}, nil
}

// Livraisons aggregates the deliveries set
func (s *StatistiquesService) Livraisons(ctx context.Context, filter StatistiquesFilter) (*StatistiquesResponse[ResumeLivraisonsResponse], error) {
	resume, parJour, parMois, err := statistiques(ctx, s.livraisons, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return &StatistiquesResponse[ResumeLivraisonsResponse]{
		Resume: ResumeLivraisonsResponse{
			NbLivraisons:  resume.NbLivraisons,
			TotalAchats:   resume.TotalAchats,
			TotalQuantite: resume.TotalQuantite,
		},
		ParJour: parJour,
		ParMois: parMois,
	}, nil
}

// Credits aggregates the customer credit set
func (s *StatistiquesService) Credits(ctx context.Context, filter StatistiquesFilter) (*StatistiquesResponse[ResumeCreditsResponse], error) {
	resume, parJour, parMois, err := statistiques(ctx, s.credits, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return &StatistiquesResponse[ResumeCreditsResponse]{
		Resume: ResumeCreditsResponse{
			NbCredits:        resume.NbCredits,
			TotalCredit:      resume.TotalCredit,
			TotalPaye:        resume.TotalPaye,
			TotalSolde:       resume.TotalSolde,
			TauxRecouvrement: resume.TauxRecouvrement(),
		},
		ParJour: parJour,
		ParMois: parMois,
	}, nil
}

// Charges aggregates the operating expense set
func (s *StatistiquesService) Charges(ctx context.Context, filter StatistiquesFilter) (*StatistiquesResponse[ResumeChargesResponse], error) {
	resume, parJour, parMois, err := statistiques(ctx, s.charges, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return &StatistiquesResponse[ResumeChargesResponse]{
		Resume: ResumeChargesResponse{
			NbCharges:     resume.NbCharges,
			TotalCharges:  resume.TotalCharges,
			TotalPayees:   resume.TotalPayees,
			TotalImpayees: resume.TotalImpayees,
		},
		ParJour: parJour,
		ParMois: parMois,
	}, nil
}

// Profits aggregates the profit analysis set
func (s *StatistiquesService) Profits(ctx context.Context, filter StatistiquesFilter) (*StatistiquesResponse[ResumeProfitsResponse], error) {
	resume, parJour, parMois, err := statistiques(ctx, s.profits, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return &StatistiquesResponse[ResumeProfitsResponse]{
		Resume: ResumeProfitsResponse{
			NbAnalyses:   resume.NbAnalyses,
			MontantAchat: resume.MontantAchat,
			MontantVente: resume.MontantVente,
			ProfitBrut:   resume.ProfitBrut,
			ProfitNet:    resume.ProfitNet,
		},
		ParJour: parJour,
		ParMois: parMois,
	}, nil
}
