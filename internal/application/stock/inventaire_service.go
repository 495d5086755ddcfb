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

// InventaireService handles physical inventory operations
type InventaireService struct {
	inventaires stock.InventaireRepository
	magasins    sales.MagasinRepository
	produits    supply.ProduitRepository
	tx          shared.TxManager
}

// NewInventaireService creates a new InventaireService
func NewInventaireService(inventaires stock.InventaireRepository, magasins sales.MagasinRepository, produits supply.ProduitRepository, tx shared.TxManager) *InventaireService {
	return &InventaireService{
		inventaires: inventaires,
		magasins:    magasins,
		produits:    produits,
		tx:          tx,
	}
}

// Create starts a physical count in the en_cours status
func (s *InventaireService) Create(ctx context.Context, req CreateInventaireRequest) (*InventaireResponse, error) {
	verr := shared.NewValidationError()
	if _, err := s.magasins.FindByID(ctx, req.MagasinID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr.Add("magasin", shared.FieldReference, "Magasin introuvable")
	}

	var inventaire *stock.Inventaire
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		numero, err := shared.ResolveNumero(ctx, req.Numero, shared.PrefixInventaire, verr, s.inventaires.ExistsByNumero, s.inventaires.ListNumeros)
		if err != nil {
			return err
		}

		inventaire, err = stock.NewInventaire(numero, req.Date, req.MagasinID, req.Responsable)
		if err != nil {
			if iverr, ok := err.(*shared.ValidationError); ok {
				verr.Merge(iverr)
				return verr
			}
			return err
		}
		if err := verr.ErrOrNil(); err != nil {
			return err
		}
		return s.inventaires.Save(ctx, inventaire)
	})
	if err != nil {
		return nil, err
	}

	response := ToInventaireResponse(inventaire)
	return &response, nil
}

// GetByID retrieves an inventory with its lines
func (s *InventaireService) GetByID(ctx context.Context, id uuid.UUID) (*InventaireResponse, error) {
	inventaire, err := s.inventaires.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInventaireResponse(inventaire)
	return &response, nil
}

// List retrieves inventories with filtering and pagination, most recent first
func (s *InventaireService) List(ctx context.Context, filter ListFilter) ([]InventaireResponse, int64, error) {
	domainFilter := buildFilter(filter, "date", "desc")
	inventaires, err := s.inventaires.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.inventaires.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInventaireResponses(inventaires), total, nil
}

// AjouterLigne records the count of one product in an inventory
func (s *InventaireService) AjouterLigne(ctx context.Context, id uuid.UUID, req AjouterLigneRequest) (*InventaireResponse, error) {
	if _, err := s.produits.FindByID(ctx, req.ProduitID); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		verr := shared.NewValidationError()
		verr.Add("produit", shared.FieldReference, "Produit introuvable")
		return nil, verr
	}

	inventaire, err := s.inventaires.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := inventaire.AjouterLigne(req.ProduitID, req.StockTheorique, req.StockPhysique); err != nil {
		return nil, err
	}
	if err := s.inventaires.Save(ctx, inventaire); err != nil {
		return nil, err
	}

	response := ToInventaireResponse(inventaire)
	return &response, nil
}

// Terminer moves an in-progress inventory to termine
func (s *InventaireService) Terminer(ctx context.Context, id uuid.UUID) (*InventaireResponse, error) {
	return s.transition(ctx, id, (*stock.Inventaire).Terminer)
}

// Valider moves a finished inventory to valide
func (s *InventaireService) Valider(ctx context.Context, id uuid.UUID) (*InventaireResponse, error) {
	return s.transition(ctx, id, (*stock.Inventaire).Valider)
}

func (s *InventaireService) transition(ctx context.Context, id uuid.UUID, step func(*stock.Inventaire) error) (*InventaireResponse, error) {
	inventaire, err := s.inventaires.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := step(inventaire); err != nil {
		return nil, err
	}
	if err := s.inventaires.Save(ctx, inventaire); err != nil {
		return nil, err
	}
	response := ToInventaireResponse(inventaire)
	return &response, nil
}

// Delete removes an inventory and its lines
func (s *InventaireService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inventaires.Delete(ctx, id)
}
