package charge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// CategorieCharge DTOs
// =============================================================================

// CreateCategorieRequest represents a request to create a charge category
type CreateCategorieRequest struct {
	Nom         string `json:"nom" binding:"required,max=100"`
	Type        string `json:"type" binding:"required,oneof=fixe variable"`
	Description string `json:"description" binding:"max=500"`
}

// CategorieResponse represents a category in API responses
type CategorieResponse struct {
	ID          uuid.UUID `json:"id"`
	Nom         string    `json:"nom"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategorieResponse maps a category to its response shape
func ToCategorieResponse(c *charge.CategorieCharge) CategorieResponse {
	return CategorieResponse{
		ID:          c.ID,
		Nom:         c.Nom,
		Type:        string(c.Type),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategorieResponses maps a slice of categories
func ToCategorieResponses(categories []charge.CategorieCharge) []CategorieResponse {
	responses := make([]CategorieResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategorieResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Charge DTOs
// =============================================================================

// CreateChargeRequest represents a request to record an operating
// expense. When the numero is omitted the next one in the CHG sequence
// is assigned. A charge flagged paid must carry its payment date.
type CreateChargeRequest struct {
	Numero        string          `json:"numero" binding:"max=20"`
	Date          time.Time       `json:"date" binding:"required"`
	CategorieID   uuid.UUID       `json:"categorie_id" binding:"required"`
	Libelle       string          `json:"libelle" binding:"required,max=200"`
	Montant       decimal.Decimal `json:"montant"`
	Fournisseur   string          `json:"fournisseur" binding:"max=200"`
	NumeroFacture string          `json:"numero_facture" binding:"max=50"`
	ModePaiement  string          `json:"mode_paiement" binding:"required,oneof=especes cheque virement mobile_money"`
	Payee         bool            `json:"payee"`
	DatePaiement  *time.Time      `json:"date_paiement"`
	Observations  string          `json:"observations" binding:"max=500"`
}

// MarquerPayeeRequest flags a charge paid on a date
type MarquerPayeeRequest struct {
	DatePaiement time.Time `json:"date_paiement" binding:"required"`
}

// ChargeResponse represents an expense in API responses
type ChargeResponse struct {
	ID            uuid.UUID       `json:"id"`
	Numero        string          `json:"numero"`
	Date          time.Time       `json:"date"`
	CategorieID   uuid.UUID       `json:"categorie_id"`
	Categorie     string          `json:"categorie,omitempty"`
	Libelle       string          `json:"libelle"`
	Montant       decimal.Decimal `json:"montant"`
	Fournisseur   string          `json:"fournisseur"`
	NumeroFacture string          `json:"numero_facture"`
	ModePaiement  string          `json:"mode_paiement"`
	Payee         bool            `json:"payee"`
	DatePaiement  *time.Time      `json:"date_paiement,omitempty"`
	Observations  string          `json:"observations"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToChargeResponse maps an expense to its response shape
func ToChargeResponse(c *charge.Charge) ChargeResponse {
	return ChargeResponse{
		ID:            c.ID,
		Numero:        c.Numero,
		Date:          c.Date,
		CategorieID:   c.CategorieID,
		Libelle:       c.Libelle,
		Montant:       c.Montant,
		Fournisseur:   c.Fournisseur,
		NumeroFacture: c.NumeroFacture,
		ModePaiement:  string(c.ModePaiement),
		Payee:         c.Payee,
		DatePaiement:  c.DatePaiement,
		Observations:  c.Observations,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToChargeResponses maps a slice of expenses
func ToChargeResponses(charges []charge.Charge) []ChargeResponse {
	responses := make([]ChargeResponse, len(charges))
	for i := range charges {
		responses[i] = ToChargeResponse(&charges[i])
	}
	return responses
}

// =============================================================================
// BudgetAnnuel DTOs
// =============================================================================

// CreateBudgetRequest represents a request to budget a category for a year
type CreateBudgetRequest struct {
	Annee       int             `json:"annee" binding:"required"`
	CategorieID uuid.UUID       `json:"categorie_id" binding:"required"`
	BudgetPrevu decimal.Decimal `json:"budget_prevu"`
}

// AjouterRealiseRequest accumulates a realized expense into a budget
type AjouterRealiseRequest struct {
	Montant decimal.Decimal `json:"montant"`
}

// BudgetResponse represents a yearly budget in API responses
type BudgetResponse struct {
	ID              uuid.UUID       `json:"id"`
	Annee           int             `json:"annee"`
	CategorieID     uuid.UUID       `json:"categorie_id"`
	BudgetPrevu     decimal.Decimal `json:"budget_prevu"`
	BudgetRealise   decimal.Decimal `json:"budget_realise"`
	Ecart           decimal.Decimal `json:"ecart"`
	TauxRealisation decimal.Decimal `json:"taux_realisation"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToBudgetResponse maps a budget to its response shape
func ToBudgetResponse(b *charge.BudgetAnnuel) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID,
		Annee:           b.Annee,
		CategorieID:     b.CategorieID,
		BudgetPrevu:     b.BudgetPrevu,
		BudgetRealise:   b.BudgetRealise,
		Ecart:           b.Ecart,
		TauxRealisation: b.TauxRealisation(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToBudgetResponses maps a slice of budgets
func ToBudgetResponses(budgets []charge.BudgetAnnuel) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = ToBudgetResponse(&budgets[i])
	}
	return responses
}

// =============================================================================
// PlanificationCharge DTOs
// =============================================================================

// CreatePlanificationRequest schedules a recurring expense
type CreatePlanificationRequest struct {
	CategorieID       uuid.UUID       `json:"categorie_id" binding:"required"`
	Libelle           string          `json:"libelle" binding:"required,max=200"`
	MontantPrevu      decimal.Decimal `json:"montant_prevu"`
	Frequence         string          `json:"frequence" binding:"required,oneof=mensuelle trimestrielle semestrielle annuelle ponctuelle"`
	ProchaineEcheance time.Time       `json:"prochaine_echeance" binding:"required"`
}

// PlanificationResponse represents a planned charge in API responses
type PlanificationResponse struct {
	ID                uuid.UUID       `json:"id"`
	CategorieID       uuid.UUID       `json:"categorie_id"`
	Libelle           string          `json:"libelle"`
	MontantPrevu      decimal.Decimal `json:"montant_prevu"`
	Frequence         string          `json:"frequence"`
	ProchaineEcheance time.Time       `json:"prochaine_echeance"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToPlanificationResponse maps a planned charge to its response shape
func ToPlanificationResponse(p *charge.PlanificationCharge) PlanificationResponse {
	return PlanificationResponse{
		ID:                p.ID,
		CategorieID:       p.CategorieID,
		Libelle:           p.Libelle,
		MontantPrevu:      p.MontantPrevu,
		Frequence:         string(p.Frequence),
		ProchaineEcheance: p.ProchaineEcheance,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPlanificationResponses maps a slice of planned charges
func ToPlanificationResponses(planifications []charge.PlanificationCharge) []PlanificationResponse {
	responses := make([]PlanificationResponse, len(planifications))
	for i := range planifications {
		responses[i] = ToPlanificationResponse(&planifications[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search      string     `form:"search"`
	DateDebut   *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin     *time.Time `form:"date_fin" time_format:"2006-01-02"`
	CategorieID *uuid.UUID `form:"categorie_id"`
	Annee       *int       `form:"annee"`
	Payee       *bool      `form:"payee"`
	Type        string     `form:"type"`
	Page        int        `form:"page"`
	PageSize    int        `form:"page_size"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir"`
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
	if filter.CategorieID != nil {
		domainFilter.Filters["categorie_id"] = *filter.CategorieID
	}
	if filter.Annee != nil {
		domainFilter.Filters["annee"] = *filter.Annee
	}
	if filter.Payee != nil {
		domainFilter.Filters["payee"] = *filter.Payee
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	return domainFilter
}
