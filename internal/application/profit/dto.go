package profit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// AnalyseProfit DTOs
// =============================================================================

// CreateAnalyseRequest represents a request to record a profit analysis
// line. When the numero is omitted the next one in the PRF sequence is
// assigned.
type CreateAnalyseRequest struct {
	Numero            string          `json:"numero" binding:"max=20"`
	Date              time.Time       `json:"date" binding:"required"`
	MagasinID         uuid.UUID       `json:"magasin_id" binding:"required"`
	ProduitID         uuid.UUID       `json:"produit_id" binding:"required"`
	CommercialID      *uuid.UUID      `json:"commercial_id"`
	QuantiteAchetee   decimal.Decimal `json:"quantite_achetee"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	QuantiteVendue    decimal.Decimal `json:"quantite_vendue"`
	PrixVenteUnitaire decimal.Decimal `json:"prix_vente_unitaire"`
	ChargesAssociees  decimal.Decimal `json:"charges_associees"`
}

// UpdateAnalyseRequest represents a request to correct an analysis line
type UpdateAnalyseRequest struct {
	QuantiteAchetee   decimal.Decimal `json:"quantite_achetee"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	QuantiteVendue    decimal.Decimal `json:"quantite_vendue"`
	PrixVenteUnitaire decimal.Decimal `json:"prix_vente_unitaire"`
	ChargesAssociees  decimal.Decimal `json:"charges_associees"`
}

// AnalyseResponse represents an analysis line in API responses
type AnalyseResponse struct {
	ID                uuid.UUID       `json:"id"`
	Numero            string          `json:"numero"`
	Date              time.Time       `json:"date"`
	MagasinID         uuid.UUID       `json:"magasin_id"`
	ProduitID         uuid.UUID       `json:"produit_id"`
	CommercialID      *uuid.UUID      `json:"commercial_id,omitempty"`
	Magasin           string          `json:"magasin,omitempty"`
	Produit           string          `json:"produit,omitempty"`
	Commercial        string          `json:"commercial,omitempty"`
	QuantiteAchetee   decimal.Decimal `json:"quantite_achetee"`
	PrixAchatUnitaire decimal.Decimal `json:"prix_achat_unitaire"`
	QuantiteVendue    decimal.Decimal `json:"quantite_vendue"`
	PrixVenteUnitaire decimal.Decimal `json:"prix_vente_unitaire"`
	ChargesAssociees  decimal.Decimal `json:"charges_associees"`
	MontantAchat      decimal.Decimal `json:"montant_achat"`
	MontantVente      decimal.Decimal `json:"montant_vente"`
	ProfitBrut        decimal.Decimal `json:"profit_brut"`
	ProfitNet         decimal.Decimal `json:"profit_net"`
	MargeBrute        decimal.Decimal `json:"marge_brute"`
	MargeNette        decimal.Decimal `json:"marge_nette"`
	Rentabilite       decimal.Decimal `json:"rentabilite"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToAnalyseResponse maps an analysis line to its response shape
func ToAnalyseResponse(a *profit.AnalyseProfit) AnalyseResponse {
	return AnalyseResponse{
		ID:                a.ID,
		Numero:            a.Numero,
		Date:              a.Date,
		MagasinID:         a.MagasinID,
		ProduitID:         a.ProduitID,
		CommercialID:      a.CommercialID,
		QuantiteAchetee:   a.QuantiteAchetee,
		PrixAchatUnitaire: a.PrixAchatUnitaire,
		QuantiteVendue:    a.QuantiteVendue,
		PrixVenteUnitaire: a.PrixVenteUnitaire,
		ChargesAssociees:  a.ChargesAssociees,
		MontantAchat:      a.MontantAchat,
		MontantVente:      a.MontantVente,
		ProfitBrut:        a.ProfitBrut,
		ProfitNet:         a.ProfitNet,
		MargeBrute:        a.MargeBrute(),
		MargeNette:        a.MargeNette(),
		Rentabilite:       a.Rentabilite(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToAnalyseResponses maps a slice of analysis lines
func ToAnalyseResponses(analyses []profit.AnalyseProfit) []AnalyseResponse {
	responses := make([]AnalyseResponse, len(analyses))
	for i := range analyses {
		responses[i] = ToAnalyseResponse(&analyses[i])
	}
	return responses
}

// =============================================================================
// RapportProfitMensuel DTOs
// =============================================================================

// GenererRapportRequest asks for the monthly rollup of one store
type GenererRapportRequest struct {
	Annee     int       `json:"annee" binding:"required"`
	Mois      int       `json:"mois" binding:"required"`
	MagasinID uuid.UUID `json:"magasin_id" binding:"required"`
}

// RapportResponse represents a monthly rollup in API responses
type RapportResponse struct {
	ID           uuid.UUID       `json:"id"`
	Annee        int             `json:"annee"`
	Mois         int             `json:"mois"`
	MagasinID    uuid.UUID       `json:"magasin_id"`
	MontantAchat decimal.Decimal `json:"montant_achat"`
	MontantVente decimal.Decimal `json:"montant_vente"`
	ProfitBrut   decimal.Decimal `json:"profit_brut"`
	ProfitNet    decimal.Decimal `json:"profit_net"`
	NbAnalyses   int             `json:"nb_analyses"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToRapportResponse maps a rollup to its response shape
func ToRapportResponse(r *profit.RapportProfitMensuel) RapportResponse {
	return RapportResponse{
		ID:           r.ID,
		Annee:        r.Annee,
		Mois:         r.Mois,
		MagasinID:    r.MagasinID,
		MontantAchat: r.MontantAchat,
		MontantVente: r.MontantVente,
		ProfitBrut:   r.ProfitBrut,
		ProfitNet:    r.ProfitNet,
		NbAnalyses:   r.NbAnalyses,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToRapportResponses maps a slice of rollups
func ToRapportResponses(rapports []profit.RapportProfitMensuel) []RapportResponse {
	responses := make([]RapportResponse, len(rapports))
	for i := range rapports {
		responses[i] = ToRapportResponse(&rapports[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
	MagasinID *uuid.UUID `form:"magasin_id"`
	ProduitID *uuid.UUID `form:"produit_id"`
	Annee     *int       `form:"annee"`
	Mois      *int       `form:"mois"`
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
	if filter.ProduitID != nil {
		domainFilter.Filters["produit_id"] = *filter.ProduitID
	}
	if filter.Annee != nil {
		domainFilter.Filters["annee"] = *filter.Annee
	}
	if filter.Mois != nil {
		domainFilter.Filters["mois"] = *filter.Mois
	}
	return domainFilter
}
