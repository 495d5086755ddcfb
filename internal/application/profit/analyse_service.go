package profit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// AnalyseService handles profit analysis operations
type AnalyseService struct {
	analyses    profit.AnalyseRepository
	magasins    sales.MagasinRepository
	produits    supply.ProduitRepository
	commerciaux sales.CommercialRepository
	tx          shared.TxManager
}

// NewAnalyseService creates a new AnalyseService
func NewAnalyseService(analyses profit.AnalyseRepository, magasins sales.MagasinRepository, produits supply.ProduitRepository, commerciaux sales.CommercialRepository, tx shared.TxManager) *AnalyseService {
	return &AnalyseService{
		analyses:    analyses,
		magasins:    magasins,
		produits:    produits,
		commerciaux: commerciaux,
		tx:          tx,
	}
}

// Create records an analysis line. A missing numero is assigned from the
// PRF sequence inside the inserting transaction.
func (s *AnalyseService) Create(ctx context.Context, req CreateAnalyseRequest) (*AnalyseResponse, error) {
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
	if req.CommercialID != nil {
		if _, err := s.commerciaux.FindByID(ctx, *req.CommercialID); err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			verr.Add("commercial", shared.FieldReference, "Commercial introuvable")
		}
	}

	var analyse *profit.AnalyseProfit
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixProfit, verr, s.analyses.ExistsByNumero, s.analyses.ListNumeros)
		if err != nil {
			return err
		}

		analyse, err = profit.NewAnalyseProfit(numero, req.Date, req.MagasinID, req.ProduitID, req.CommercialID, req.QuantiteAchetee, req.PrixAchatUnitaire, req.QuantiteVendue, req.PrixVenteUnitaire, req.ChargesAssociees)
		if err != nil {
			if averr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(averr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.analyses.Save(ctx, analyse)
	})
	if err != nil {
		return nil, err
	}

	response := ToAnalyseResponse(analyse)
	return &response, nil
}

// GetByID retrieves an analysis line by ID
func (s *AnalyseService) GetByID(ctx context.Context, id uuid.UUID) (*AnalyseResponse, error) {
	analyse, err := s.analyses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAnalyseResponse(analyse)
	return &response, nil
}

// List retrieves analysis lines with filtering and pagination, most
// recent first
func (s *AnalyseService) List(ctx context.Context, filter ListFilter) ([]AnalyseResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	analyses, err := s.analyses.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.analyses.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToAnalyseResponses(analyses), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with referenced names resolved for the spreadsheet columns
func (s *AnalyseService) ListForExport(ctx context.Context, filter ListFilter) ([]AnalyseResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	analyses, err := s.analyses.FindAll(ctx, domainFilter)
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

	responses := ToAnalyseResponses(analyses)
	for i := range responses {
		responses[i].Magasin = magasins[responses[i].MagasinID]
		responses[i].Produit = produits[responses[i].ProduitID]
		if responses[i].CommercialID != nil {
			responses[i].Commercial = commerciaux[*responses[i].CommercialID]
		}
	}
	return responses, nil
}

// Update corrects the quantities, prices and charges of an analysis line
func (s *AnalyseService) Update(ctx context.Context, id uuid.UUID, req UpdateAnalyseRequest) (*AnalyseResponse, error) {
	analyse, err := s.analyses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := analyse.Update(req.QuantiteAchetee, req.PrixAchatUnitaire, req.QuantiteVendue, req.PrixVenteUnitaire, req.ChargesAssociees); err != nil {
		return nil, err
	}
	if err := s.analyses.Save(ctx, analyse); err != nil {
		return nil, err
	}
	response := ToAnalyseResponse(analyse)
	return &response, nil
}

// Delete removes an analysis line
func (s *AnalyseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.analyses.Delete(ctx, id)
}
