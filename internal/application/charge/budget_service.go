package charge

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// BudgetService handles yearly budget operations
type BudgetService struct {
	budgets    charge.BudgetRepository
	categories charge.CategorieRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgets charge.BudgetRepository, categories charge.CategorieRepository) *BudgetService {
	return &BudgetService{budgets: budgets, categories: categories}
}

// Create budgets a category for a year. Each (annee, categorie) pair
// carries at most one budget.
func (s *BudgetService) Create(ctx context.Context, req CreateBudgetRequest) (*BudgetResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.categories.FindByID(ctx, req.CategorieID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("categorie", shared.FieldReference, "Catégorie introuvable")
	}
	if req.CategorieID != uuid.Nil {
		exists, err := s.budgets.ExistsByAnneeCategorie(ctx, req.Annee, req.CategorieID)
		if err != nil {
			return nil, err
		}
		if exists {
			verr.Add("annee", shared.FieldDuplicate, "Cette catégorie a déjà un budget pour cette année")
		}
	}

	budget, err := charge.NewBudgetAnnuel(req.Annee, req.CategorieID, req.BudgetPrevu)
	if err != nil {
		if bverr, ok := err.(*shared.ValidationError); ok {
			verr.Merge(bverr)
			return nil, verr
		}
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.budgets.Save(ctx, budget); err != nil {
		return nil, err
	}
	response := ToBudgetResponse(budget)
	return &response, nil
}

// GetByID retrieves a budget by ID
func (s *BudgetService) GetByID(ctx context.Context, id uuid.UUID) (*BudgetResponse, error) {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBudgetResponse(budget)
	return &response, nil
}

// List retrieves budgets with filtering and pagination
func (s *BudgetService) List(ctx context.Context, filter ListFilter) ([]BudgetResponse, int64, error) {
	domainFilter := buildFilter(filter, "annee", "desc")
	budgets, err := s.budgets.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.budgets.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToBudgetResponses(budgets), total, nil
}

// AjouterRealise accumulates a realized expense into a budget and
// re-derives the gap
func (s *BudgetService) AjouterRealise(ctx context.Context, id uuid.UUID, req AjouterRealiseRequest) (*BudgetResponse, error) {
	budget, err := s.budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := budget.AjouterRealise(req.Montant); err != nil {
		return nil, err
	}
	if err := s.budgets.Save(ctx, budget); err != nil {
		return nil, err
	}
	response := ToBudgetResponse(budget)
	return &response, nil
}

// Delete removes a budget
func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.budgets.Delete(ctx, id)
}
