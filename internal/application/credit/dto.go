package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// CreditClient DTOs
// =============================================================================

// CreateCreditRequest represents a request to open a customer credit. When
// the numero is omitted the next one in the CRD sequence is assigned.
type CreateCreditRequest struct {
	Numero       string          `json:"numero" binding:"max=20"`
	Date         time.Time       `json:"date" binding:"required"`
	ClientID     uuid.UUID       `json:"client_id" binding:"required"`
	MagasinID    uuid.UUID       `json:"magasin_id" binding:"required"`
	ProduitID    uuid.UUID       `json:"produit_id" binding:"required"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
}

// UpdateCreditRequest represents a request to correct a credit's raw inputs
type UpdateCreditRequest struct {
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
}

// CreditResponse represents a customer credit in API responses
type CreditResponse struct {
	ID               uuid.UUID       `json:"id"`
	Numero           string          `json:"numero"`
	Date             time.Time       `json:"date"`
	ClientID         uuid.UUID       `json:"client_id"`
	MagasinID        uuid.UUID       `json:"magasin_id"`
	ProduitID        uuid.UUID       `json:"produit_id"`
	Client           string          `json:"client,omitempty"`
	Magasin          string          `json:"magasin,omitempty"`
	Produit          string          `json:"produit,omitempty"`
	Quantite         decimal.Decimal `json:"quantite"`
	PrixUnitaire     decimal.Decimal `json:"prix_unitaire"`
	MontantTotal     decimal.Decimal `json:"montant_total"`
	MontantPaye      decimal.Decimal `json:"montant_paye"`
	SoldeRestant     decimal.Decimal `json:"solde_restant"`
	EstSolde         bool            `json:"est_solde"`
	TauxRecouvrement decimal.Decimal `json:"taux_recouvrement"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToCreditResponse maps a credit to its response shape
func ToCreditResponse(c *credit.CreditClient) CreditResponse {
	return CreditResponse{
		ID:               c.ID,
		Numero:           c.Numero,
		Date:             c.Date,
		ClientID:         c.ClientID,
		MagasinID:        c.MagasinID,
		ProduitID:        c.ProduitID,
		Quantite:         c.Quantite,
		PrixUnitaire:     c.PrixUnitaire,
		MontantTotal:     c.MontantTotal,
		MontantPaye:      c.MontantPaye,
		SoldeRestant:     c.SoldeRestant,
		EstSolde:         c.EstSolde,
		TauxRecouvrement: c.TauxRecouvrement(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToCreditResponses maps a slice of credits
func ToCreditResponses(credits []credit.CreditClient) []CreditResponse {
	responses := make([]CreditResponse, len(credits))
	for i := range credits {
		responses[i] = ToCreditResponse(&credits[i])
	}
	return responses
}

// =============================================================================
// Paiement DTOs
// =============================================================================

// CreatePaiementRequest represents a request to record an installment
// against a customer credit
type CreatePaiementRequest struct {
	Date      time.Time       `json:"date" binding:"required"`
	Montant   decimal.Decimal `json:"montant"`
	Mode      string          `json:"mode" binding:"required,oneof=especes cheque virement mobile_money"`
	Reference string          `json:"reference" binding:"max=50"`
}

// PaiementResponse represents a payment in API responses
type PaiementResponse struct {
	ID        uuid.UUID       `json:"id"`
	CreditID  uuid.UUID       `json:"credit_id"`
	Date      time.Time       `json:"date"`
	Montant   decimal.Decimal `json:"montant"`
	Mode      string          `json:"mode"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToPaiementResponse maps a payment to its response shape
func ToPaiementResponse(p *credit.Paiement) PaiementResponse {
	return PaiementResponse{
		ID:        p.ID,
		CreditID:  p.CreditID,
		Date:      p.Date,
		Montant:   p.Montant,
		Mode:      p.Mode.String(),
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPaiementResponses maps a slice of payments
func ToPaiementResponses(paiements []credit.Paiement) []PaiementResponse {
	responses := make([]PaiementResponse, len(paiements))
	for i := range paiements {
		responses[i] = ToPaiementResponse(&paiements[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
	ClientID  *uuid.UUID `form:"client_id"`
	MagasinID *uuid.UUID `form:"magasin_id"`
	ProduitID *uuid.UUID `form:"produit_id"`
	EstSolde  *bool      `form:"est_solde"`
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
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.MagasinID != nil {
		domainFilter.Filters["magasin_id"] = *filter.MagasinID
	}
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	if filter.EstSolde != nil {
		domainFilter.Filters["est_solde"] = *filter.EstSolde
	}
	return domainFilter
}
