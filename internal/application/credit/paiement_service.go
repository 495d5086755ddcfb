package credit

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// PaiementService handles payment operations against customer credits
type PaiementService struct {
	paiements credit.PaiementRepository
	credits   credit.CreditRepository
	tx        shared.TxManager
}

// NewPaiementService creates a new PaiementService
func NewPaiementService(paiements credit.PaiementRepository, credits credit.CreditRepository, tx shared.TxManager) *PaiementService {
	return &PaiementService{
		paiements: paiements,
		credits:   credits,
		tx:        tx,
	}
}

// Enregistrer records an installment against a credit and recomputes the
// credit's paid total as the sum of its payments. The payment insert and
// the credit update share one transaction; either both land or neither.
func (s *PaiementService) Enregistrer(ctx context.Context, creditID uuid.UUID, req CreatePaiementRequest) (*PaiementResponse, error) {
	var paiement *credit.Paiement
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		cc, err := s.credits.FindByID(ctx, creditID)
		if err != nil {
			return err
		}

		paiement, err = credit.NewPaiement(cc.ID, req.Date, req.Montant, credit.ModePaiement(req.Mode), req.Reference)
		if err != nil {
			return err
		}
		if err := s.paiements.Save(ctx, paiement); err != nil {
			return err
		}

		total, err := s.paiements.SumByCredit(ctx, cc.ID)
		if err != nil {
			return err
		}
		cc.ApplyMontantPaye(total)
		return s.credits.Save(ctx, cc)
	})
	if err != nil {
		return nil, err
	}

	response := ToPaiementResponse(paiement)
	return &response, nil
}

// ListByCredit retrieves every payment of a credit in chronological order
func (s *PaiementService) ListByCredit(ctx context.Context, creditID uuid.UUID) ([]PaiementResponse, error) {
	if _, err := s.credits.FindByID(ctx, creditID); err != nil {
		return nil, err
	}
	paiements, err := s.paiements.FindByCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}
	return ToPaiementResponses(paiements), nil
}

// Supprimer removes a payment and recomputes the parent credit's totals
// inside the same transaction
func (s *PaiementService) Supprimer(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		paiement, err := s.paiements.FindByID(ctx, id)
		if err != nil {
			return err
		}
		cc, err := s.credits.FindByID(ctx, paiement.CreditID)
		if err != nil {
			return err
		}
		if err := s.paiements.Delete(ctx, id); err != nil {
			return err
		}
		total, err := s.paiements.SumByCredit(ctx, cc.ID)
		if err != nil {
			return err
		}
		cc.ApplyMontantPaye(total)
		return s.credits.Save(ctx, cc)
	})
}
