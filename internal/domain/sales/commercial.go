package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Commercial represents a salesperson attached to a main store
type Commercial struct {
	shared.BaseEntity
	Nom                   string
	Prenom                string
	Telephone             string
	Email                 string
	MagasinID             uuid.UUID
	CommissionPourcentage decimal.Decimal
	DateEmbauche          time.Time
	Actif                 bool
}

// TableName returns the database table name
func (Commercial) TableName() string { return "commerciaux" }

// NewCommercial creates a new salesperson
func NewCommercial(nom, prenom, telephone, email string, magasinID uuid.UUID, commissionPourcentage decimal.Decimal, dateEmbauche time.Time) (*Commercial, error) {
	nom = shared.NormalizeName(nom)
	prenom = shared.NormalizeName(prenom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom est requis")
	}
	if prenom == "" {
		verr.Add("prenom", shared.FieldRequired, "Le prénom est requis")
	}
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin principal est requis")
	}
	if commissionPourcentage.IsNegative() || commissionPourcentage.GreaterThan(decimal.NewFromInt(100)) {
		verr.Add("commission_pourcentage", shared.FieldRange, "La commission doit être comprise entre 0 et 100")
	}
	shared.ValidateDateNotFuture(verr, "date_embauche", dateEmbauche)
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Commercial{
		BaseEntity:            shared.NewBaseEntity(),
		Nom:                   nom,
		Prenom:                prenom,
		Telephone:             telephone,
		Email:                 email,
		MagasinID:             magasinID,
		CommissionPourcentage: commissionPourcentage.Round(2),
		DateEmbauche:          dateEmbauche,
		Actif:                 true,
	}, nil
}

// Update replaces the salesperson's descriptive fields
func (c *Commercial) Update(nom, prenom, telephone, email string, commissionPourcentage decimal.Decimal) error {
	nom = shared.NormalizeName(nom)
	prenom = shared.NormalizeName(prenom)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom est requis")
	}
	if prenom == "" {
		verr.Add("prenom", shared.FieldRequired, "Le prénom est requis")
	}
	if commissionPourcentage.IsNegative() || commissionPourcentage.GreaterThan(decimal.NewFromInt(100)) {
		verr.Add("commission_pourcentage", shared.FieldRange, "La commission doit être comprise entre 0 et 100")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	c.Nom = nom
	c.Prenom = prenom
	c.Telephone = telephone
	c.Email = email
	c.CommissionPourcentage = commissionPourcentage.Round(2)
	c.Touch()
	return nil
}

// NomComplet returns the display name, "NOM Prenom" when a first name exists
func (c *Commercial) NomComplet() string {
	if c.Prenom != "" {
		return c.Nom + " " + c.Prenom
	}
	return c.Nom
}

// Desactiver marks the salesperson inactive instead of deleting the record
func (c *Commercial) Desactiver() {
	c.Actif = false
	c.Touch()
}

// Reactiver restores a deactivated salesperson
func (c *Commercial) Reactiver() {
	c.Actif = true
	c.Touch()
}
