package supply

import (
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Produit represents a product bought from suppliers and sold in stores
type Produit struct {
	shared.BaseEntity
	Nom                string
	Description        string
	UniteMesure        string // kg, litre, piece, sac...
	PrixVenteConseille decimal.Decimal
}

// TableName returns the database table name
func (Produit) TableName() string { return "produits" }

// NewProduit creates a new product
func NewProduit(nom, description, uniteMesure string, prixVenteConseille decimal.Decimal) (*Produit, error) {
	nom = shared.NormalizeName(nom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom du produit est requis")
	}
	if uniteMesure == "" {
		verr.Add("unite_mesure", shared.FieldRequired, "L'unité de mesure est requise")
	}
	if prixVenteConseille.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_vente_conseille", shared.FieldRange, "Le prix de vente conseillé doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Produit{
		BaseEntity:         shared.NewBaseEntity(),
		Nom:                nom,
		Description:        description,
		UniteMesure:        uniteMesure,
		PrixVenteConseille: prixVenteConseille.Round(2),
	}, nil
}

// Update replaces the product's descriptive fields
func (p *Produit) Update(nom, description, uniteMesure string, prixVenteConseille decimal.Decimal) error {
	nom = shared.NormalizeName(nom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom du produit est requis")
	}
	if uniteMesure == "" {
		verr.Add("unite_mesure", shared.FieldRequired, "L'unité de mesure est requise")
	}
	if prixVenteConseille.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_vente_conseille", shared.FieldRange, "Le prix de vente conseillé doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	p.Nom = nom
	p.Description = description
	p.UniteMesure = uniteMesure
	p.PrixVenteConseille = prixVenteConseille.Round(2)
	p.Touch()
	return nil
}
