package profit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// RapportService rebuilds and serves the monthly profit rollups
type RapportService struct {
	rapports profit.RapportRepository
	analyses profit.AnalyseRepository
	magasins sales.MagasinRepository
	tx       shared.TxManager
}

// NewRapportService creates a new RapportService
func NewRapportService(rapports profit.RapportRepository, analyses profit.AnalyseRepository, magasins sales.MagasinRepository, tx shared.TxManager) *RapportService {
	return &RapportService{
		rapports: rapports,
		analyses: analyses,
		magasins: magasins,
		tx:       tx,
	}
}

// Generer rebuilds the rollup of one store for one month from its
// analysis lines. An existing rollup for the period is replaced in
// place, the read and the write sharing one transaction.
func (s *RapportService) Generer(ctx context.Context, req GenererRapportRequest) (*RapportResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	var rapport *profit.RapportProfitMensuel
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		analyses, err := s.analyses.FindByPeriode(ctx, req.Annee, req.Mois, req.MagasinID)
		if err != nil {
			return err
		}

		rapport, err = profit.BuildRapportMensuel(req.Annee, req.Mois, req.MagasinID, analyses)
		if err != nil {
			return err
		}

		existing, err := s.rapports.FindByPeriodeMagasin(ctx, req.Annee, req.Mois, req.MagasinID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			rapport.ID = existing.ID
			rapport.CreatedAt = existing.CreatedAt
			rapport.Touch()
		}
		return s.rapports.Save(ctx, rapport)
	})
	if err != nil {
		return nil, err
	}

	response := ToRapportResponse(rapport)
	return &response, nil
}

// GetByPeriode retrieves the rollup of one store for one month
func (s *RapportService) GetByPeriode(ctx context.Context, annee, mois int, magasinID uuid.UUID) (*RapportResponse, error) {
	rapport, err := s.rapports.FindByPeriodeMagasin(ctx, annee, mois, magasinID)
	if err != nil {
		return nil, err
	}
	response := ToRapportResponse(rapport)
	return &response, nil
}

// List retrieves rollups with filtering and pagination, most recent
// period first
func (s *RapportService) List(ctx context.Context, filter ListFilter) ([]RapportResponse, int64, error) {
	domainFilter := buildFilter(filter, "annee", "desc")
	rapports, err := s.rapports.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.rapports.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToRapportResponses(rapports), total, nil
}

// Delete removes a rollup
func (s *RapportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.rapports.Delete(ctx, id)
}
