package cash

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/cash"
)

// MouvementService handles cash register ledger operations
type MouvementService struct {
	mouvements cash.MouvementRepository
}

// NewMouvementService creates a new MouvementService
func NewMouvementService(mouvements cash.MouvementRepository) *MouvementService {
	return &MouvementService{mouvements: mouvements}
}

// Create records a ledger line
func (s *MouvementService) Create(ctx context.Context, req CreateMouvementRequest) (*MouvementResponse, error) {
	mouvement, err := cash.NewMouvementCaisse(req.Date, req.Libelle, req.MontantEntree, req.MontantSortie, req.Observations)
	if err != nil {
		return nil, err
	}
	if err := s.mouvements.Save(ctx, mouvement); err != nil {
		return nil, err
	}
	response := ToMouvementResponse(mouvement)
	return &response, nil
}

// GetByID retrieves a ledger line by ID
func (s *MouvementService) GetByID(ctx context.Context, id uuid.UUID) (*MouvementResponse, error) {
	mouvement, err := s.mouvements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMouvementResponse(mouvement)
	return &response, nil
}

// List retrieves ledger lines with filtering and pagination, most recent
// first
func (s *MouvementService) List(ctx context.Context, filter ListFilter) ([]MouvementResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	mouvements, err := s.mouvements.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.mouvements.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToMouvementResponses(mouvements), total, nil
}

// ListForExport retrieves the whole filtered ledger in chronological order
func (s *MouvementService) ListForExport(ctx context.Context, filter ListFilter) ([]MouvementResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	mouvements, err := s.mouvements.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToMouvementResponses(mouvements), nil
}

// Solde aggregates the ledger over the filtered period
func (s *MouvementService) Solde(ctx context.Context, filter ListFilter) (*SoldeResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	solde, err := s.mouvements.Solde(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return &SoldeResponse{
		TotalEntrees: solde.TotalEntrees,
		TotalSorties: solde.TotalSorties,
		Solde:        solde.Solde,
	}, nil
}

// Delete removes a ledger line
func (s *MouvementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mouvements.Delete(ctx, id)
}
