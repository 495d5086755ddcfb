package sales

import (
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Magasin represents a point-of-sale location holding its own stock
type Magasin struct {
	shared.BaseEntity
	Nom         string
	Adresse     string
	Telephone   string
	Responsable string
}

// TableName returns the database table name
func (Magasin) TableName() string { return "magasins" }

// NewMagasin creates a new store
func NewMagasin(nom, adresse, telephone, responsable string) (*Magasin, error) {
	nom = shared.NormalizeName(nom)
	if nom == "" {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldRequired, "Le nom du magasin est requis")
		return nil, verr
	}
	return &Magasin{
		BaseEntity:  shared.NewBaseEntity(),
		Nom:         nom,
		Adresse:     adresse,
		Telephone:   telephone,
		Responsable: responsable,
	}, nil
}

// Update replaces the store's descriptive fields
func (m *Magasin) Update(nom, adresse, telephone, responsable string) error {
	nom = shared.NormalizeName(nom)
	if nom == "" {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldRequired, "Le nom du magasin est requis")
		return verr
	}
	m.Nom = nom
	m.Adresse = adresse
	m.Telephone = telephone
	m.Responsable = responsable
	m.Touch()
	return nil
}

// Client represents a customer, walk-in or on account
type Client struct {
	shared.BaseEntity
	Nom       string
	Prenom    string
	Telephone string
	Email     string
	Adresse   string
}

// TableName returns the database table name
func (Client) TableName() string { return "clients" }

// NewClient creates a new customer
func NewClient(nom, prenom, telephone, email, adresse string) (*Client, error) {
	nom = shared.NormalizeName(nom)
	if nom == "" {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldRequired, "Le nom du client est requis")
		return nil, verr
	}
	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Nom:        nom,
		Prenom:     prenom,
		Telephone:  telephone,
		Email:      email,
		Adresse:    adresse,
	}, nil
}

// Update replaces the customer's descriptive fields
func (c *Client) Update(nom, prenom, telephone, email, adresse string) error {
	nom = shared.NormalizeName(nom)
	if nom == "" {
		verr := shared.NewValidationError()
		verr.Add("nom", shared.FieldRequired, "Le nom du client est requis")
		return verr
	}
	c.Nom = nom
	c.Prenom = prenom
	c.Telephone = telephone
	c.Email = email
	c.Adresse = adresse
	c.Touch()
	return nil
}

// NomComplet returns the display name, "NOM Prenom" when a first name exists
func (c *Client) NomComplet() string {
	if c.Prenom != "" {
		return c.Nom + " " + c.Prenom
	}
	return c.Nom
}
