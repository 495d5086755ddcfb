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

// MouvementService handles stock movement operations
type MouvementService struct {
	mouvements  stock.MouvementRepository
	magasins    sales.MagasinRepository
	produits    supply.ProduitRepository
	commerciaux sales.CommercialRepository
	stocks      stock.StockActuelRepository
	tx          shared.TxManager
}

// NewMouvementService creates a new MouvementService
func NewMouvementService(mouvements stock.MouvementRepository, magasins sales.MagasinRepository, produits supply.ProduitRepository, commerciaux sales.CommercialRepository, stocks stock.StockActuelRepository, tx shared.TxManager) *MouvementService {
	return &MouvementService{
		mouvements:  mouvements,
		magasins:    magasins,
		produits:    produits,
		commerciaux: commerciaux,
		stocks:      stocks,
		tx:          tx,
	}
}

// Create records a daily stock movement. The (magasin, produit) pair must
// exist in current stock; the commercial is optional but must exist when
// given.
func (s *MouvementService) Create(ctx context.Context, req CreateMouvementRequest) (*MouvementResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
	}
	if req.CommercialID != nil {
		if _, err := s.commerciaux.FindByID(ctx, *req.CommercialID); err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			verr.Add("commercial", shared.FieldReference, "Commercial introuvable")
		}
	}
	if req.MagasinID != uuid.Nil && req.ProduitID != uuid.Nil {
		stocked, err := s.stocks.ExistsByMagasinProduit(ctx, req.MagasinID, req.ProduitID)
		if err != nil {
			return nil, err
		}
		if !stocked {
			verr.Add("produit", shared.FieldReference, "Ce produit n'est pas en stock dans ce magasin")
		}
	}

	var mouvement *stock.MouvementStock
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixMouvement, verr, s.mouvements.ExistsByNumero, s.mouvements.ListNumeros)
		if err != nil {
			return err
		}

		mouvement, err = stock.NewMouvementStock(numero, req.Date, req.MagasinID, req.ProduitID, req.CommercialID, req.StockInitial, req.StockVendu, req.MontantVentes)
		if err != nil {
			if mverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(mverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.mouvements.Save(ctx, mouvement)
	})
	if err != nil {
		return nil, err
	}

	response := ToMouvementResponse(mouvement)
	return &response, nil
}

// GetByID retrieves a movement by ID
func (s *MouvementService) GetByID(ctx context.Context, id uuid.UUID) (*MouvementResponse, error) {
	mouvement, err := s.mouvements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMouvementResponse(mouvement)
	return &response, nil
}

// List retrieves movements with filtering and pagination, most recent first
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

// ListForExport retrieves the whole filtered set in chronological order,
// with referenced names resolved for the spreadsheet columns
func (s *MouvementService) ListForExport(ctx context.Context, filter ListFilter) ([]MouvementResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	mouvements, err := s.mouvements.FindAll(ctx, domainFilter)
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
	commerciaux, err := shared.LabelIndex(ctx, s.commerciaux.FindAll, func(c *sales.Commercial) (uuid.UUID, string) { return c.ID, c.NomComplet() })
	if err != nil {
		return nil, err
	}

	responses := ToMouvementResponses(mouvements)
	for i := range responses {
		responses[i].Magasin = magasins[responses[i].MagasinID]
		responses[i].Produit = produits[responses[i].ProduitID]
		if responses[i].CommercialID != nil {
			responses[i].Commercial = commerciaux[*responses[i].CommercialID]
		}
	}
	return responses, nil
}

// Update corrects a movement's quantities and re-derives the final stock
func (s *MouvementService) Update(ctx context.Context, id uuid.UUID, req UpdateMouvementRequest) (*MouvementResponse, error) {
	mouvement, err := s.mouvements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mouvement.UpdateQuantites(req.StockInitial, req.StockVendu, req.MontantVentes); err != nil {
		return nil, err
	}
	if err := s.mouvements.Save(ctx, mouvement); err != nil {
		return nil, err
	}
	response := ToMouvementResponse(mouvement)
	return &response, nil
}

// Delete removes a movement
func (s *MouvementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mouvements.Delete(ctx, id)
}
