package charge

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// ChargeService handles operating expense operations
type ChargeService struct {
	charges    charge.ChargeRepository
	categories charge.CategorieRepository
	tx         shared.TxManager
}

// NewChargeService creates a new ChargeService
func NewChargeService(charges charge.ChargeRepository, categories charge.CategorieRepository, tx shared.TxManager) *ChargeService {
	return &ChargeService{
		charges:    charges,
		categories: categories,
		tx:         tx,
	}
}

// Create records an expense. A missing numero is assigned from the CHG
// sequence inside the inserting transaction.
func (s *ChargeService) Create(ctx context.Context, req CreateChargeRequest) (*ChargeResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.categories.FindByID(ctx, req.CategorieID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("categorie", shared.FieldReference, "Catégorie introuvable")
	}

	var expense *charge.Charge
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixCharge, verr, s.charges.ExistsByNumero, s.charges.ListNumeros)
		if err != nil {
			return err
		}

		expense, err = charge.NewCharge(numero, req.Date, req.CategorieID, req.Libelle, req.Montant, req.Fournisseur, req.NumeroFacture, charge.ModeReglement(req.ModePaiement), req.Payee, req.DatePaiement, req.Observations)
		if err != nil {
			if cverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(cverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.charges.Save(ctx, expense)
	})
	if err != nil {
		return nil, err
	}

	response := ToChargeResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ChargeService) GetByID(ctx context.Context, id uuid.UUID) (*ChargeResponse, error) {
	expense, err := s.charges.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToChargeResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination, most recent first
func (s *ChargeService) List(ctx context.Context, filter ListFilter) ([]ChargeResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	charges, err := s.charges.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.charges.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToChargeResponses(charges), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with category names resolved for the spreadsheet column
func (s *ChargeService) ListForExport(ctx context.Context, filter ListFilter) ([]ChargeResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	charges, err := s.charges.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	categories, err := shared.LabelIndex(ctx, s.categories.FindAll, func(c *charge.CategorieCharge) (uuid.UUID, string) { return c.ID, c.Nom })
	if err != nil {
		return nil, err
	}

	responses := ToChargeResponses(charges)
	for i := range responses {
		responses[i].Categorie = categories[responses[i].CategorieID]
	}
	return responses, nil
}

// MarquerPayee flags an expense paid on the given date
func (s *ChargeService) MarquerPayee(ctx context.Context, id uuid.UUID, req MarquerPayeeRequest) (*ChargeResponse, error) {
	expense, err := s.charges.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := expense.MarquerPayee(req.DatePaiement); err != nil {
		return nil, err
	}
	if err := s.charges.Save(ctx, expense); err != nil {
		return nil, err
	}
	response := ToChargeResponse(expense)
	return &response, nil
}

// Delete removes an expense
func (s *ChargeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.charges.Delete(ctx, id)
}
