package supply

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// =============================================================================
// Fournisseur DTOs
// =============================================================================

// CreateFournisseurRequest represents a request to register a supplier
type CreateFournisseurRequest struct {
	Nom       string `json:"nom" binding:"required,min=1,max=200"`
	Adresse   string `json:"adresse" binding:"max=500"`
	Telephone string `json:"telephone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateFournisseurRequest represents a request to update a supplier
type UpdateFournisseurRequest struct {
	Nom       string `json:"nom" binding:"required,min=1,max=200"`
	Adresse   string `json:"adresse" binding:"max=500"`
	Telephone string `json:"telephone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// FournisseurResponse represents a supplier in API responses
type FournisseurResponse struct {
	ID        uuid.UUID `json:"id"`
	Nom       string    `json:"nom"`
	Adresse   string    `json:"adresse"`
	Telephone string    `json:"telephone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToFournisseurResponse maps a supplier to its response shape
func ToFournisseurResponse(f *supply.Fournisseur) FournisseurResponse {
	return FournisseurResponse{
		ID:        f.ID,
		Nom:       f.Nom,
		Adresse:   f.Adresse,
		Telephone: f.Telephone,
		Email:     f.Email,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToFournisseurResponses maps a slice of suppliers
func ToFournisseurResponses(fournisseurs []supply.Fournisseur) []FournisseurResponse {
	responses := make([]FournisseurResponse, len(fournisseurs))
	for i := range fournisseurs {
		responses[i] = ToFournisseurResponse(&fournisseurs[i])
	}
	return responses
}

// =============================================================================
// Produit DTOs
// =============================================================================

// CreateProduitRequest represents a request to register a product
type CreateProduitRequest struct {
	Nom                string          `json:"nom" binding:"required,min=1,max=200"`
	Description        string          `json:"description" binding:"max=500"`
	UniteMesure        string          `json:"unite_mesure" binding:"max=20"`
	PrixVenteConseille decimal.Decimal `json:"prix_vente_conseille"`
}

// UpdateProduitRequest represents a request to update a product
type UpdateProduitRequest struct {
	Nom                string          `json:"nom" binding:"required,min=1,max=200"`
	Description        string          `json:"description" binding:"max=500"`
	UniteMesure        string          `json:"unite_mesure" binding:"max=20"`
	PrixVenteConseille decimal.Decimal `json:"prix_vente_conseille"`
}

// ProduitResponse represents a product in API responses
type ProduitResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Nom                string          `json:"nom"`
	Description        string          `json:"description"`
	UniteMesure        string          `json:"unite_mesure"`
	PrixVenteConseille decimal.Decimal `json:"prix_vente_conseille"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToProduitResponse maps a product to its response shape
func ToProduitResponse(p *supply.Produit) ProduitResponse {
	return ProduitResponse{
		ID:                 p.ID,
		Nom:                p.Nom,
		Description:        p.Description,
		UniteMesure:        p.UniteMesure,
		PrixVenteConseille: p.PrixVenteConseille,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToProduitResponses maps a slice of products
func ToProduitResponses(produits []supply.Produit) []ProduitResponse {
	responses := make([]ProduitResponse, len(produits))
	for i := range produits {
		responses[i] = ToProduitResponse(&produits[i])
	}
	return responses
}

// =============================================================================
// Livraison DTOs
// =============================================================================

// CreateLivraisonRequest represents a request to record a delivery. When the
// numero is omitted the next one in the LIV sequence is assigned.
type CreateLivraisonRequest struct {
	Numero            string          `json:"numero" binding:"max=20"`
	Date              time.Time       `json:"date" binding:"required"`
	FournisseurID     uuid.UUID       `json:"fournisseur_id" binding:"required"`
	ProduitID         uuid.UUID       `json:"produit_id" binding:"required"`
	QuantiteLivree    decimal.Decimal `json:"quantite_livree"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	Observations      string          `json:"observations" binding:"max=500"`
}

// UpdateLivraisonRequest represents a request to correct a delivery
type UpdateLivraisonRequest struct {
	Date              time.Time       `json:"date" binding:"required"`
	QuantiteLivree    decimal.Decimal `json:"quantite_livree"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	Observations      string          `json:"observations" binding:"max=500"`
}

// LivraisonResponse represents a delivery in API responses
type LivraisonResponse struct {
	ID                uuid.UUID       `json:"id"`
	Numero            string          `json:"numero"`
	Date              time.Time       `json:"date"`
	FournisseurID     uuid.UUID       `json:"fournisseur_id"`
	ProduitID         uuid.UUID       `json:"produit_id"`
	Fournisseur       string          `json:"fournisseur,omitempty"`
	Produit           string          `json:"produit,omitempty"`
	QuantiteLivree    decimal.Decimal `json:"quantite_livree"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	MontantTotalAchat decimal.Decimal `json:"montant_total_achat"`
	Observations      string          `json:"observations"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToLivraisonResponse maps a delivery to its response shape
func ToLivraisonResponse(l *supply.Livraison) LivraisonResponse {
	return LivraisonResponse{
		ID:                l.ID,
		Numero:            l.Numero,
		Date:              l.Date,
		FournisseurID:     l.FournisseurID,
		ProduitID:         l.ProduitID,
		QuantiteLivree:    l.QuantiteLivree,
		PrixAchatUnitaire: l.PrixAchatUnitaire,
		MontantTotalAchat: l.MontantTotalAchat,
		Observations:      l.Observations,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// ToLivraisonResponses maps a slice of deliveries
func ToLivraisonResponses(livraisons []supply.Livraison) []LivraisonResponse {
	responses := make([]LivraisonResponse, len(livraisons))
	for i := range livraisons {
		responses[i] = ToLivraisonResponse(&livraisons[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search        string     `form:"search"`
	DateDebut     *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin       *time.Time `form:"date_fin" time_format:"2006-01-02"`
	FournisseurID *uuid.UUID `form:"fournisseur_id"`
	ProduitID     *uuid.UUID `form:"produit_id"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir"`
}
