package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// VenteService handles sale operations
type VenteService struct {
	ventes   sales.VenteRepository
	magasins sales.MagasinRepository
	clients  sales.ClientRepository
	produits supply.ProduitRepository
	stocks   stock.StockActuelRepository
	tx       shared.TxManager
}

// NewVenteService creates a new VenteService
func NewVenteService(ventes sales.VenteRepository, magasins sales.MagasinRepository, clients sales.ClientRepository, produits supply.ProduitRepository, stocks stock.StockActuelRepository, tx shared.TxManager) *VenteService {
	return &VenteService{
		ventes:   ventes,
		magasins: magasins,
		clients:  clients,
		produits: produits,
		stocks:   stocks,
		tx:       tx,
	}
}

// Create records a sale. The (magasin, produit) pair must exist in current
// stock; a pair the store does not carry is reported on the produit field.
func (s *VenteService) Create(ctx context.Context, req CreateVenteRequest) (*VenteResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
	}
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("client", shared.FieldReference, "Client introuvable")
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

	var vente *sales.Vente
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixVente, verr, s.ventes.ExistsByNumero, s.ventes.ListNumeros)
		if err != nil {
			return err
		}

		vente, err = sales.NewVente(numero, req.Date, req.MagasinID, req.ClientID, req.ProduitID, req.QuantiteVendue, sales.TypeVente(req.TypeVente), req.PrixUnitaire)
		if err != nil {
			if nverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(nverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.ventes.Save(ctx, vente)
	})
	if err != nil {
		return nil, err
	}

	response := ToVenteResponse(vente)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *VenteService) GetByID(ctx context.Context, id uuid.UUID) (*VenteResponse, error) {
	vente, err := s.ventes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVenteResponse(vente)
	return &response, nil
}

// List retrieves sales with filtering and pagination, most recent first
func (s *VenteService) List(ctx context.Context, filter ListFilter) ([]VenteResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	ventes, err := s.ventes.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ventes.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToVenteResponses(ventes), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with referenced names resolved for the spreadsheet columns
func (s *VenteService) ListForExport(ctx context.Context, filter ListFilter) ([]VenteResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	ventes, err := s.ventes.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	magasins, err := shared.LabelIndex(ctx, s.magasins.FindAll, func(m *sales.Magasin) (uuid.UUID, string) { return m.ID, m.Nom })
	if err != nil {
		return nil, err
	}
	clients, err := shared.LabelIndex(ctx, s.clients.FindAll, func(c *sales.Client) (uuid.UUID, string) { return c.ID, c.NomComplet() })
	if err != nil {
		return nil, err
	}
	produits, err := shared.LabelIndex(ctx, s.produits.FindAll, func(p *supply.Produit) (uuid.UUID, string) { return p.ID, p.Nom })
	if err != nil {
		return nil, err
	}

	responses := ToVenteResponses(ventes)
	for i := range responses {
		responses[i].Magasin = magasins[responses[i].MagasinID]
		responses[i].Client = clients[responses[i].ClientID]
		responses[i].Produit = produits[responses[i].ProduitID]
	}
	return responses, nil
}

// Update corrects a sale's raw inputs and re-derives its total
func (s *VenteService) Update(ctx context.Context, id uuid.UUID, req UpdateVenteRequest) (*VenteResponse, error) {
	vente, err := s.ventes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vente.UpdateQuantiteEtPrix(req.QuantiteVendue, req.PrixUnitaire); err != nil {
		return nil, err
	}
	if err := s.ventes.Save(ctx, vente); err != nil {
		return nil, err
	}
	response := ToVenteResponse(vente)
	return &response, nil
}

// Delete removes a sale
func (s *VenteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ventes.Delete(ctx, id)
}
