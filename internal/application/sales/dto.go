package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// Magasin DTOs
// =============================================================================

// CreateMagasinRequest represents a request to register a store
type CreateMagasinRequest struct {
	Nom         string `json:"nom" binding:"required,min=1,max=200"`
	Adresse     string `json:"adresse" binding:"max=500"`
	Telephone   string `json:"telephone" binding:"max=50"`
	Responsable string `json:"responsable" binding:"max=200"`
}

// MagasinResponse represents a store in API responses
type MagasinResponse struct {
	ID          uuid.UUID `json:"id"`
	Nom         string    `json:"nom"`
	Adresse     string    `json:"adresse"`
	Telephone   string    `json:"telephone"`
	Responsable string    `json:"responsable"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToMagasinResponse maps a store to its response shape
func ToMagasinResponse(m *sales.Magasin) MagasinResponse {
	return MagasinResponse{
		ID:          m.ID,
		Nom:         m.Nom,
		Adresse:     m.Adresse,
		Telephone:   m.Telephone,
		Responsable: m.Responsable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMagasinResponses maps a slice of stores
func ToMagasinResponses(magasins []sales.Magasin) []MagasinResponse {
	responses := make([]MagasinResponse, len(magasins))
	for i := range magasins {
		responses[i] = ToMagasinResponse(&magasins[i])
	}
	return responses
}

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to register a customer
type CreateClientRequest struct {
	Nom       string `json:"nom" binding:"required,min=1,max=200"`
	Prenom    string `json:"prenom" binding:"max=200"`
	Telephone string `json:"telephone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Adresse   string `json:"adresse" binding:"max=500"`
}

// ClientResponse represents a customer in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	Nom        string    `json:"nom"`
	Prenom     string    `json:"prenom"`
	NomComplet string    `json:"nom_complet"`
	Telephone  string    `json:"telephone"`
	Email      string    `json:"email"`
	Adresse    string    `json:"adresse"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToClientResponse maps a customer to its response shape
func ToClientResponse(c *sales.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Nom:        c.Nom,
		Prenom:     c.Prenom,
		NomComplet: c.NomComplet(),
		Telephone:  c.Telephone,
		Email:      c.Email,
		Adresse:    c.Adresse,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToClientResponses maps a slice of customers
func ToClientResponses(clients []sales.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// =============================================================================
// Commercial DTOs
// =============================================================================

// CreateCommercialRequest represents a request to register a salesperson
type CreateCommercialRequest struct {
	Nom                   string          `json:"nom" binding:"required,min=1,max=200"`
	Prenom                string          `json:"prenom" binding:"required,min=1,max=200"`
	Telephone             string          `json:"telephone" binding:"max=50"`
	Email                 string          `json:"email" binding:"omitempty,email,max=200"`
	MagasinID             uuid.UUID       `json:"magasin_id" binding:"required"`
	CommissionPourcentage decimal.Decimal `json:"commission_pourcentage"`
	DateEmbauche          time.Time       `json:"date_embauche" binding:"required"`
}

// UpdateCommercialRequest represents a request to update a salesperson
type UpdateCommercialRequest struct {
	Nom                   string          `json:"nom" binding:"required,min=1,max=200"`
	Prenom                string          `json:"prenom" binding:"required,min=1,max=200"`
	Telephone             string          `json:"telephone" binding:"max=50"`
	Email                 string          `json:"email" binding:"omitempty,email,max=200"`
	CommissionPourcentage decimal.Decimal `json:"commission_pourcentage"`
}

// CommercialResponse represents a salesperson in API responses
type CommercialResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Nom                   string          `json:"nom"`
	Prenom                string          `json:"prenom"`
	Telephone             string          `json:"telephone"`
	Email                 string          `json:"email"`
	MagasinID             uuid.UUID       `json:"magasin_id"`
	CommissionPourcentage decimal.Decimal `json:"commission_pourcentage"`
	DateEmbauche          time.Time       `json:"date_embauche"`
	Actif                 bool            `json:"actif"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ToCommercialResponse maps a salesperson to its response shape
func ToCommercialResponse(c *sales.Commercial) CommercialResponse {
	return CommercialResponse{
		ID:                    c.ID,
		Nom:                   c.Nom,
		Prenom:                c.Prenom,
		Telephone:             c.Telephone,
		Email:                 c.Email,
		MagasinID:             c.MagasinID,
		CommissionPourcentage: c.CommissionPourcentage,
		DateEmbauche:          c.DateEmbauche,
		Actif:                 c.Actif,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// ToCommercialResponses maps a slice of salespersons
func ToCommercialResponses(commerciaux []sales.Commercial) []CommercialResponse {
	responses := make([]CommercialResponse, len(commerciaux))
	for i := range commerciaux {
		responses[i] = ToCommercialResponse(&commerciaux[i])
	}
	return responses
}

// =============================================================================
// Vente DTOs
// =============================================================================

// CreateVenteRequest represents a request to record a sale
type CreateVenteRequest struct {
	Numero         string          `json:"numero" binding:"max=20"`
	Date           time.Time       `json:"date" binding:"required"`
	MagasinID      uuid.UUID       `json:"magasin_id" binding:"required"`
	ClientID       uuid.UUID       `json:"client_id" binding:"required"`
	ProduitID      uuid.UUID       `json:"produit_id" binding:"required"`
	QuantiteVendue decimal.Decimal `json:"quantite_vendue"`
	TypeVente      string          `json:"type_vente" binding:"required,oneof=cash credit"`
	PrixUnitaire   decimal.Decimal `json:"prix_unitaire"`
}

// UpdateVenteRequest represents a request to correct a sale
type UpdateVenteRequest struct {
	QuantiteVendue decimal.Decimal `json:"quantite_vendue"`
	PrixUnitaire   decimal.Decimal `json:"prix_unitaire"`
}

// VenteResponse represents a sale in API responses
type VenteResponse struct {
	ID             uuid.UUID       `json:"id"`
	Numero         string          `json:"numero"`
	Date           time.Time       `json:"date"`
	MagasinID      uuid.UUID       `json:"magasin_id"`
	ClientID       uuid.UUID       `json:"client_id"`
	ProduitID      uuid.UUID       `json:"produit_id"`
	Magasin        string          `json:"magasin,omitempty"`
	Client         string          `json:"client,omitempty"`
	Produit        string          `json:"produit,omitempty"`
	QuantiteVendue decimal.Decimal `json:"quantite_vendue"`
	TypeVente      string          `json:"type_vente"`
	PrixUnitaire   decimal.Decimal `json:"prix_unitaire"`
	TotalVente     decimal.Decimal `json:"total_vente"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToVenteResponse maps a sale to its response shape
func ToVenteResponse(v *sales.Vente) VenteResponse {
	return VenteResponse{
		ID:             v.ID,
		Numero:         v.Numero,
		Date:           v.Date,
		MagasinID:      v.MagasinID,
		ClientID:       v.ClientID,
		ProduitID:      v.ProduitID,
		QuantiteVendue: v.QuantiteVendue,
		TypeVente:      string(v.TypeVente),
		PrixUnitaire:   v.PrixUnitaire,
		TotalVente:     v.TotalVente,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// ToVenteResponses maps a slice of sales
func ToVenteResponses(ventes []sales.Vente) []VenteResponse {
	responses := make([]VenteResponse, len(ventes))
	for i := range ventes {
		responses[i] = ToVenteResponse(&ventes[i])
	}
	return responses
}

// ListFilter represents the list query options of the module
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
	MagasinID *uuid.UUID `form:"magasin_id"`
	ClientID  *uuid.UUID `form:"client_id"`
	ProduitID *uuid.UUID `form:"produit_id"`
	TypeVente string     `form:"type_vente" binding:"omitempty,oneof=cash credit"`
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir"`
}

func buildFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		DateFrom: filter.DateDebut,
		DateTo:   filter.DateFin,
		Filters:  make(map[string]any),
	}
	if filter.MagasinID != nil {
		domainFilter.Filters["magasin_id"] = *filter.MagasinID
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	if filter.TypeVente != "" {
		domainFilter.Filters["type_vente"] = filter.TypeVente
	}
	return domainFilter
}
