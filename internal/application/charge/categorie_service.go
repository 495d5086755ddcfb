package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CategorieService handles charge category operations
type CategorieService struct {
	categories charge.CategorieRepository
}

// NewCategorieService creates a new CategorieService
func NewCategorieService(categories charge.CategorieRepository) *CategorieService {
	return &CategorieService{categories: categories}
}

// Create creates a category. The name is unique after normalization.
func (s *CategorieService) Create(ctx context.Context, req CreateCategorieRequest) (*CategorieResponse, error) {
	categorie, err := charge.NewCategorieCharge(req.Nom, charge.TypeCategorie(req.Type), req.Description)
	if err != nil {
		return nil, err
	}

	taken, err := s.categories.ExistsByNom(ctx, categorie.Nom)
	if err != nil {
		return nil, err
	}
	if taken {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldDuplicate, "Une catégorie porte déjà ce nom")
		return nil, verr
	}

	if err := s.categories.Save(ctx, categorie); err != nil {
		return nil, err
	}
	response := ToCategorieResponse(categorie)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategorieService) GetByID(ctx context.Context, id uuid.UUID) (*CategorieResponse, error) {
	categorie, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCategorieResponse(categorie)
	return &response, nil
}

// List retrieves categories with filtering and pagination
func (s *CategorieService) List(ctx context.Context, filter ListFilter) ([]CategorieResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	categories, err := s.categories.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.categories.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCategorieResponses(categories), total, nil
}

// Delete removes a category
func (s *CategorieService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}
