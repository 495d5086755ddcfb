package stock

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// StockActuelService handles current stock operations
type StockActuelService struct {
	stocks   stock.StockActuelRepository
	magasins sales.MagasinRepository
	produits supply.ProduitRepository
}

// NewStockActuelService creates a new StockActuelService
func NewStockActuelService(stocks stock.StockActuelRepository, magasins sales.MagasinRepository, produits supply.ProduitRepository) *StockActuelService {
	return &StockActuelService{
		stocks:   stocks,
		magasins: magasins,
		produits: produits,
	}
}

// Create opens the current-stock row of a (store, product) pair. Each
// pair carries at most one row.
func (s *StockActuelService) Create(ctx context.Context, req CreateStockActuelRequest) (*StockActuelResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
	}
	if _, err := s.produits.FindByID(ctx, req.ProduitID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("produit", shared.FieldReference, "Produit introuvable")
	}
	if req.MagasinID != uuid.Nil && req.ProduitID != uuid.Nil {
		exists, err := s.stocks.ExistsByMagasinProduit(ctx, req.MagasinID, req.ProduitID)
		if err != nil {
			return nil, err
		}
		if exists {
			verr.Add("produit", shared.FieldDuplicate, "Ce produit a déjà un stock dans ce magasin")
		}
	}

	entity, err := stock.NewStockActuel(req.MagasinID, req.ProduitID, req.QuantiteActuelle, req.SeuilAlerte, req.PrixMoyenAchat)
	if err != nil {
		if sverr, ok := err.(*shared.ValidationError); ok {
			verr.Merge(sverr)
			return nil, verr
		}
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	if err := s.stocks.Save(ctx, entity); err != nil {
		return nil, err
	}

	response := ToStockActuelResponse(entity)
	return &response, nil
}

// GetByID retrieves a current-stock row by ID
func (s *StockActuelService) GetByID(ctx context.Context, id uuid.UUID) (*StockActuelResponse, error) {
	entity, err := s.stocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStockActuelResponse(entity)
	return &response, nil
}

// List retrieves current stock with filtering and pagination
func (s *StockActuelService) List(ctx context.Context, filter ListFilter) ([]StockActuelResponse, int64, error) {
	domainFilter := buildFilter(filter, "created_at", "desc")
	stocks, err := s.stocks.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.stocks.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToStockActuelResponses(stocks), total, nil
}

// ListForExport retrieves the whole filtered set in insertion order,
// with referenced names resolved for the spreadsheet columns
func (s *StockActuelService) ListForExport(ctx context.Context, filter ListFilter) ([]StockActuelResponse, error) {
	domainFilter := buildFilter(filter, "created_at", "desc").WithoutPagination().Chronological()
	stocks, err := s.stocks.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	magasins, err := shared.LabelIndex(ctx, s.magasins.FindAll, func(m *sales.Magasin) (uuid.UUID, string) { return m.ID, m.Nom })
	if err != nil {
		return nil, err
	}
	produits, err := shared.LabelIndex(ctx, s.produits.FindAll, func(p *supply.Produit) (uuid.UUID, string) { return p.ID, p.Nom })
	if err != nil {
		return nil, err
	}

	responses := ToStockActuelResponses(stocks)
	for i := range responses {
		responses[i].Magasin = magasins[responses[i].MagasinID]
		responses[i].Produit = produits[responses[i].ProduitID]
	}
	return responses, nil
}

// Ajuster replaces the quantity and average purchase price of a row and
// re-derives its stock value
func (s *StockActuelService) Ajuster(ctx context.Context, id uuid.UUID, req AjusterStockRequest) (*StockActuelResponse, error) {
	entity, err := s.stocks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.Ajuster(req.QuantiteActuelle, req.PrixMoyenAchat); err != nil {
		return nil, err
	}
	if err := s.stocks.Save(ctx, entity); err != nil {
		return nil, err
	}
	response := ToStockActuelResponse(entity)
	return &response, nil
}

// Delete removes a current-stock row
func (s *StockActuelService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.stocks.Delete(ctx, id)
}
