package supply

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// FournisseurService handles supplier operations
type FournisseurService struct {
	fournisseurs supply.FournisseurRepository
}

// NewFournisseurService creates a new FournisseurService
func NewFournisseurService(fournisseurs supply.FournisseurRepository) *FournisseurService {
	return &FournisseurService{fournisseurs: fournisseurs}
}

// Create registers a supplier
func (s *FournisseurService) Create(ctx context.Context, req CreateFournisseurRequest) (*FournisseurResponse, error) {
	fournisseur, err := supply.NewFournisseur(req.Nom, req.Adresse, req.Telephone, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.fournisseurs.Save(ctx, fournisseur); err != nil {
		return nil, err
	}
	response := ToFournisseurResponse(fournisseur)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *FournisseurService) GetByID(ctx context.Context, id uuid.UUID) (*FournisseurResponse, error) {
	fournisseur, err := s.fournisseurs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToFournisseurResponse(fournisseur)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *FournisseurService) List(ctx context.Context, filter ListFilter) ([]FournisseurResponse, int64, error) {
	domainFilter := buildFilter(filter, "nom", "asc")
	fournisseurs, err := s.fournisseurs.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.fournisseurs.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToFournisseurResponses(fournisseurs), total, nil
}

// Update replaces a supplier's descriptive fields
func (s *FournisseurService) Update(ctx context.Context, id uuid.UUID, req UpdateFournisseurRequest) (*FournisseurResponse, error) {
	fournisseur, err := s.fournisseurs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fournisseur.Update(req.Nom, req.Adresse, req.Telephone, req.Email); err != nil {
		return nil, err
	}
	if err := s.fournisseurs.Save(ctx, fournisseur); err != nil {
		return nil, err
	}
	response := ToFournisseurResponse(fournisseur)
	return &response, nil
}

// Delete removes a supplier
func (s *FournisseurService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.fournisseurs.Delete(ctx, id)
}

// buildFilter translates the module list filter into the shared filter,
// applying list-view defaults
func buildFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		DateFrom: filter.DateDebut,
		DateTo:   filter.DateFin,
		Filters:  make(map[string]any),
	}
	if filter.FournisseurID != nil {
		domainFilter.Filters["fournisseur_id"] = *filter.FournisseurID
	}
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	return domainFilter
}
