package credit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/stock"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// CreditService handles customer credit operations
type CreditService struct {
	credits  credit.CreditRepository
	clients  sales.ClientRepository
	magasins sales.MagasinRepository
	produits supply.ProduitRepository
	stocks   stock.StockActuelRepository
	tx       shared.TxManager
}

// NewCreditService creates a new CreditService
func NewCreditService(credits credit.CreditRepository, clients sales.ClientRepository, magasins sales.MagasinRepository, produits supply.ProduitRepository, stocks stock.StockActuelRepository, tx shared.TxManager) *CreditService {
	return &CreditService{
		credits:  credits,
		clients:  clients,
		magasins: magasins,
		produits: produits,
		stocks:   stocks,
		tx:       tx,
	}
}

// Create opens a customer credit. The (magasin, produit) pair must exist in
// current stock, the same rule as a cash sale.
func (s *CreditService) Create(ctx context.Context, req CreateCreditRequest) (*CreditResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.clients.FindByID(ctx, req.ClientID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("client", shared.FieldReference, "Client introuvable")
	}
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
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

	var cc *credit.CreditClient
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixCredit, verr, s.credits.ExistsByNumero, s.credits.ListNumeros)
		if err != nil {
			return err
		}

		cc, err = credit.NewCreditClient(numero, req.Date, req.ClientID, req.MagasinID, req.ProduitID, req.Quantite, req.PrixUnitaire)
		if err != nil {
			if cverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(cverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.credits.Save(ctx, cc)
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditResponse(cc)
	return &response, nil
}

// GetByID retrieves a credit by ID
func (s *CreditService) GetByID(ctx context.Context, id uuid.UUID) (*CreditResponse, error) {
	cc, err := s.credits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCreditResponse(cc)
	return &response, nil
}

// List retrieves credits with filtering and pagination, most recent first
func (s *CreditService) List(ctx context.Context, filter ListFilter) ([]CreditResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	credits, err := s.credits.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.credits.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCreditResponses(credits), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with referenced names resolved for the spreadsheet columns
func (s *CreditService) ListForExport(ctx context.Context, filter ListFilter) ([]CreditResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	credits, err := s.credits.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	clients, err := shared.LabelIndex(ctx, s.clients.FindAll, func(c *sales.Client) (uuid.UUID, string) { return c.ID, c.NomComplet() })
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

	responses := ToCreditResponses(credits)
	for i := range responses {
		responses[i].Client = clients[responses[i].ClientID]
		responses[i].Magasin = magasins[responses[i].MagasinID]
		responses[i].Produit = produits[responses[i].ProduitID]
	}
	return responses, nil
}

// Update corrects a credit's quantity and unit price and re-derives its
// totals against the payments already recorded
func (s *CreditService) Update(ctx context.Context, id uuid.UUID, req UpdateCreditRequest) (*CreditResponse, error) {
	cc, err := s.credits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cc.UpdateQuantiteEtPrix(req.Quantite, req.PrixUnitaire); err != nil {
		return nil, err
	}
	if err := s.credits.Save(ctx, cc); err != nil {
		return nil, err
	}
	response := ToCreditResponse(cc)
	return &response, nil
}

// Delete removes a credit
func (s *CreditService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.credits.Delete(ctx, id)
}
