package stock

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// StockActuel is the current stock of a product in a store, unique per
// (magasin, produit). valeur_stock is derived from the quantity and the
// average purchase price.
type StockActuel struct {
	shared.BaseEntity
	MagasinID        uuid.UUID `gorm:"uniqueIndex:idx_stock_magasin_produit"`
	ProduitID        uuid.UUID `gorm:"uniqueIndex:idx_stock_magasin_produit"`
	QuantiteActuelle decimal.Decimal
	SeuilAlerte      decimal.Decimal
	PrixMoyenAchat   decimal.Decimal
	ValeurStock      decimal.Decimal
}

// TableName returns the database table name
func (StockActuel) TableName() string { return "stocks_actuels" }

// NewStockActuel creates the current-stock row for a (store, product)
// pair. A zero alert threshold falls back to the default of 10.
func NewStockActuel(magasinID, produitID uuid.UUID, quantite, seuilAlerteVal, prixMoyenAchat decimal.Decimal) (*StockActuel, error) {
	verr := shared.NewValidationError()
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if quantite.IsNegative() {
		verr.Add("quantite_actuelle", shared.FieldRange, "La quantité actuelle ne peut pas être négative")
	}
	if seuilAlerteVal.IsNegative() {
		verr.Add("seuil_alerte", shared.FieldRange, "Le seuil d'alerte ne peut pas être négatif")
	}
	if prixMoyenAchat.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_moyen_achat", shared.FieldRange, "Le prix moyen d'achat doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if seuilAlerteVal.IsZero() {
		seuilAlerteVal = seuilAlerte
	}
	s := &StockActuel{
		BaseEntity:       shared.NewBaseEntity(),
		MagasinID:        magasinID,
		ProduitID:        produitID,
		QuantiteActuelle: quantite.Round(2),
		SeuilAlerte:      seuilAlerteVal.Round(2),
		PrixMoyenAchat:   prixMoyenAchat.Round(2),
	}
	s.Recompute()
	return s, nil
}

// Ajuster replaces the quantity and average price, keeping the threshold
func (s *StockActuel) Ajuster(quantite, prixMoyenAchat decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantite.IsNegative() {
		verr.Add("quantite_actuelle", shared.FieldRange, "La quantité actuelle ne peut pas être négative")
	}
	if prixMoyenAchat.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_moyen_achat", shared.FieldRange, "Le prix moyen d'achat doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	s.QuantiteActuelle = quantite.Round(2)
	s.PrixMoyenAchat = prixMoyenAchat.Round(2)
	s.Recompute()
	s.Touch()
	return nil
}

// Recompute re-derives valeur_stock = quantite × prix moyen d'achat
func (s *StockActuel) Recompute() {
	s.ValeurStock = s.QuantiteActuelle.Mul(s.PrixMoyenAchat).Round(2)
}

// EnRupture reports an exhausted stock
func (s *StockActuel) EnRupture() bool {
	return s.QuantiteActuelle.LessThanOrEqual(decimal.Zero)
}

// EnAlerte reports a stock at or below the alert threshold
func (s *StockActuel) EnAlerte() bool {
	return s.QuantiteActuelle.LessThanOrEqual(s.SeuilAlerte)
}
