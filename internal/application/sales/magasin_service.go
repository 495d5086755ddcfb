package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
)

// MagasinService handles store operations
type MagasinService struct {
	magasins sales.MagasinRepository
}

// NewMagasinService creates a new MagasinService
func NewMagasinService(magasins sales.MagasinRepository) *MagasinService {
	return &MagasinService{magasins: magasins}
}

// Create registers a store
func (s *MagasinService) Create(ctx context.Context, req CreateMagasinRequest) (*MagasinResponse, error) {
	magasin, err := sales.NewMagasin(req.Nom, req.Adresse, req.Telephone, req.Responsable)
	if err != nil {
		return nil, err
	}
	if err := s.magasins.Save(ctx, magasin); err != nil {
		return nil, err
	}
	response := ToMagasinResponse(magasin)
	return &response, nil
}

// GetByID retrieves a store by ID
func (s *MagasinService) GetByID(ctx context.Context, id uuid.UUID) (*MagasinResponse, error) {
	magasin, err := s.magasins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMagasinResponse(magasin)
	return &response, nil
}

// List retrieves stores with filtering and pagination
func (s *MagasinService) List(ctx context.Context, filter ListFilter) ([]MagasinResponse, int64, error) {
	domainFilter := buildFilter(filter, "nom", "asc")
	magasins, err := s.magasins.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.magasins.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToMagasinResponses(magasins), total, nil
}

// Update replaces a store's descriptive fields
func (s *MagasinService) Update(ctx context.Context, id uuid.UUID, req CreateMagasinRequest) (*MagasinResponse, error) {
	magasin, err := s.magasins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := magasin.Update(req.Nom, req.Adresse, req.Telephone, req.Responsable); err != nil {
		return nil, err
	}
	if err := s.magasins.Save(ctx, magasin); err != nil {
		return nil, err
	}
	response := ToMagasinResponse(magasin)
	return &response, nil
}

// Delete removes a store
func (s *MagasinService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.magasins.Delete(ctx, id)
}
