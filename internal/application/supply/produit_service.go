package supply

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// ProduitService handles product operations
type ProduitService struct {
	produits supply.ProduitRepository
}

// NewProduitService creates a new ProduitService
func NewProduitService(produits supply.ProduitRepository) *ProduitService {
	return &ProduitService{produits: produits}
}

// Create registers a product
func (s *ProduitService) Create(ctx context.Context, req CreateProduitRequest) (*ProduitResponse, error) {
	produit, err := supply.NewProduit(req.Nom, req.Description, req.UniteMesure, req.PrixVenteConseille)
	if err != nil {
		return nil, err
	}
	if err := s.produits.Save(ctx, produit); err != nil {
		return nil, err
	}
	response := ToProduitResponse(produit)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProduitService) GetByID(ctx context.Context, id uuid.UUID) (*ProduitResponse, error) {
	produit, err := s.produits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProduitResponse(produit)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProduitService) List(ctx context.Context, filter ListFilter) ([]ProduitResponse, int64, error) {
	domainFilter := buildFilter(filter, "nom", "asc")
	produits, err := s.produits.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.produits.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToProduitResponses(produits), total, nil
}

// Update replaces a product's descriptive fields
func (s *ProduitService) Update(ctx context.Context, id uuid.UUID, req UpdateProduitRequest) (*ProduitResponse, error) {
	produit, err := s.produits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := produit.Update(req.Nom, req.Description, req.UniteMesure, req.PrixVenteConseille); err != nil {
		return nil, err
	}
	if err := s.produits.Save(ctx, produit); err != nil {
		return nil, err
	}
	response := ToProduitResponse(produit)
	return &response, nil
}

// Delete removes a product
func (s *ProduitService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.produits.Delete(ctx, id)
}
