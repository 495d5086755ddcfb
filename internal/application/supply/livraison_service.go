package supply

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// LivraisonService handles delivery operations
type LivraisonService struct {
	livraisons   supply.LivraisonRepository
	fournisseurs supply.FournisseurRepository
	produits     supply.ProduitRepository
	tx           shared.TxManager
}

// NewLivraisonService creates a new LivraisonService
func NewLivraisonService(livraisons supply.LivraisonRepository, fournisseurs supply.FournisseurRepository, produits supply.ProduitRepository, tx shared.TxManager) *LivraisonService {
	return &LivraisonService{
		livraisons:   livraisons,
		fournisseurs: fournisseurs,
		produits:     produits,
		tx:           tx,
	}
}

// Create records a delivery. A missing numero is assigned from the LIV
// sequence inside the inserting transaction; a concurrent writer taking the
// same numero is surfaced by the unique constraint.
func (s *LivraisonService) Create(ctx context.Context, req CreateLivraisonRequest) (*LivraisonResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.fournisseurs.FindByID(ctx, req.FournisseurID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("fournisseur", shared.FieldReference, "Fournisseur introuvable")
	}
	if _, err := s.produits.FindByID(ctx, req.ProduitID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("produit", shared.FieldReference, "Produit introuvable")
	}

	var livraison *supply.Livraison
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixLivraison, verr, s.livraisons.ExistsByNumero, s.livraisons.ListNumeros)
		if err != nil {
			return err
		}

		livraison, err = supply.NewLivraison(numero, req.Date, req.FournisseurID, req.ProduitID, req.QuantiteLivree, req.PrixAchatUnitaire, req.Observations)
		if err != nil {
			if lverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(lverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.livraisons.Save(ctx, livraison)
	})
	if err != nil {
		return nil, err
	}

	response := ToLivraisonResponse(livraison)
	return &response, nil
}

// GetByID retrieves a delivery by ID
func (s *LivraisonService) GetByID(ctx context.Context, id uuid.UUID) (*LivraisonResponse, error) {
	livraison, err := s.livraisons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLivraisonResponse(livraison)
	return &response, nil
}

// List retrieves deliveries with filtering and pagination, most recent first
func (s *LivraisonService) List(ctx context.Context, filter ListFilter) ([]LivraisonResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	livraisons, err := s.livraisons.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.livraisons.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToLivraisonResponses(livraisons), total, nil
}

// ListForExport retrieves the whole filtered set in chronological order,
// with referenced names resolved for the spreadsheet columns
func (s *LivraisonService) ListForExport(ctx context.Context, filter ListFilter) ([]LivraisonResponse, error) {
	domainFilter := buildFilter(filter, "date", "desc").WithoutPagination().Chronological()
	livraisons, err := s.livraisons.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	fournisseurs, err := shared.LabelIndex(ctx, s.fournisseurs.FindAll, func(f *supply.Fournisseur) (uuid.UUID, string) { return f.ID, f.Nom })
	if err != nil {
		return nil, err
	}
	produits, err := shared.LabelIndex(ctx, s.produits.FindAll, func(p *supply.Produit) (uuid.UUID, string) { return p.ID, p.Nom })
	if err != nil {
		return nil, err
	}

	responses := ToLivraisonResponses(livraisons)
	for i := range responses {
		responses[i].Fournisseur = fournisseurs[responses[i].FournisseurID]
		responses[i].Produit = produits[responses[i].ProduitID]
	}
	return responses, nil
}

// Update corrects a delivery and re-derives its total
func (s *LivraisonService) Update(ctx context.Context, id uuid.UUID, req UpdateLivraisonRequest) (*LivraisonResponse, error) {
	livraison, err := s.livraisons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := livraison.Update(req.Date, req.QuantiteLivree, req.PrixAchatUnitaire, req.Observations); err != nil {
		return nil, err
	}
	if err := s.livraisons.Save(ctx, livraison); err != nil {
		return nil, err
	}
	response := ToLivraisonResponse(livraison)
	return &response, nil
}

// Delete removes a delivery
func (s *LivraisonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.livraisons.Delete(ctx, id)
}
