package charge

import (
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// TypeCategorie splits charges between fixed and variable costs
type TypeCategorie string

const (
	CategorieFixe     TypeCategorie = "fixe"
	CategorieVariable TypeCategorie = "variable"
)

// IsValid checks if the value is a known category type
func (t TypeCategorie) IsValid() bool {
	return t == CategorieFixe || t == CategorieVariable
}

// CategorieCharge groups operating charges under a unique name
type CategorieCharge struct {
	shared.BaseEntity
	Nom         string `gorm:"uniqueIndex"`
	Type        TypeCategorie
	Description string
}

// TableName returns the database table name
func (CategorieCharge) TableName() string { return "categories_charges" }

// NewCategorieCharge creates a charge category
func NewCategorieCharge(nom string, typeCategorie TypeCategorie, description string) (*CategorieCharge, error) {
	nom = shared.NormalizeName(nom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom est requis")
	}
	if !typeCategorie.IsValid() {
		verr.Add("type", shared.FieldFormat, "Type invalide (fixe ou variable)")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &CategorieCharge{
		BaseEntity:  shared.NewBaseEntity(),
		Nom:         nom,
		Type:        typeCategorie,
		Description: description,
	}, nil
}
