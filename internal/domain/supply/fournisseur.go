package supply

import (
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Fournisseur represents a supplier delivering products to the business
type Fournisseur struct {
	shared.BaseEntity
	Nom       string
	Adresse   string
	Telephone string
	Email     string
}

// TableName returns the database table name
func (Fournisseur) TableName() string { return "fournisseurs" }

// NewFournisseur creates a new supplier. The name is normalized
// (trimmed, uppercased) before any constraint is checked.
func NewFournisseur(nom, adresse, telephone, email string) (*Fournisseur, error) {
	nom = shared.NormalizeName(nom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom du fournisseur est requis")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Fournisseur{
		BaseEntity: shared.NewBaseEntity(),
		Nom:        nom,
		Adresse:    adresse,
		Telephone:  telephone,
		Email:      email,
	}, nil
}

// Update replaces the supplier's descriptive fields
func (f *Fournisseur) Update(nom, adresse, telephone, email string) error {
	nom = shared.NormalizeName(nom)
	if nom == "" {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldRequired, "Le nom du fournisseur est requis")
		return verr
	}
	f.Nom = nom
	f.Adresse = adresse
	f.Telephone = telephone
	f.Email = email
	f.Touch()
	return nil
}
