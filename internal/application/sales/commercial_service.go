package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CommercialService handles salesperson operations
type CommercialService struct {
	commerciaux sales.CommercialRepository
	magasins    sales.MagasinRepository
}

// NewCommercialService creates a new CommercialService
func NewCommercialService(commerciaux sales.CommercialRepository, magasins sales.MagasinRepository) *CommercialService {
	return &CommercialService{commerciaux: commerciaux, magasins: magasins}
}

// Create registers a salesperson attached to an existing store
func (s *CommercialService) Create(ctx context.Context, req CreateCommercialRequest) (*CommercialResponse, error) {
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr := shared.NewValidationError()
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
		return nil, verr
	}

	commercial, err := sales.NewCommercial(req.Nom, req.Prenom, req.Telephone, req.Email, req.MagasinID, req.CommissionPourcentage, req.DateEmbauche)
	if err != nil {
		return nil, err
	}
	if err := s.commerciaux.Save(ctx, commercial); err != nil {
		return nil, err
	}
	response := ToCommercialResponse(commercial)
	return &response, nil
}

// GetByID retrieves a salesperson by ID
func (s *CommercialService) GetByID(ctx context.Context, id uuid.UUID) (*CommercialResponse, error) {
	commercial, err := s.commerciaux.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCommercialResponse(commercial)
	return &response, nil
}

// List retrieves salespersons with filtering and pagination
func (s *CommercialService) List(ctx context.Context, filter ListFilter) ([]CommercialResponse, int64, error) {
	domainFilter := buildFilter(filter, "nom", "asc")
	commerciaux, err := s.commerciaux.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.commerciaux.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCommercialResponses(commerciaux), total, nil
}

// Update replaces a salesperson's descriptive fields
func (s *CommercialService) Update(ctx context.Context, id uuid.UUID, req UpdateCommercialRequest) (*CommercialResponse, error) {
	commercial, err := s.commerciaux.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := commercial.Update(req.Nom, req.Prenom, req.Telephone, req.Email, req.CommissionPourcentage); err != nil {
		return nil, err
	}
	if err := s.commerciaux.Save(ctx, commercial); err != nil {
		return nil, err
	}
	response := ToCommercialResponse(commercial)
	return &response, nil
}

// Desactiver marks a salesperson inactive instead of deleting the record
func (s *CommercialService) Desactiver(ctx context.Context, id uuid.UUID) (*CommercialResponse, error) {
	commercial, err := s.commerciaux.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	commercial.Desactiver()
	if err := s.commerciaux.Save(ctx, commercial); err != nil {
		return nil, err
	}
	response := ToCommercialResponse(commercial)
	return &response, nil
}

// Reactiver restores a deactivated salesperson
func (s *CommercialService) Reactiver(ctx context.Context, id uuid.UUID) (*CommercialResponse, error) {
	commercial, err := s.commerciaux.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	commercial.Reactiver()
	if err := s.commerciaux.Save(ctx, commercial); err != nil {
		return nil, err
	}
	response := ToCommercialResponse(commercial)
	return &response, nil
}
