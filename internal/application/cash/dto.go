package cash

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/cash"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CreateMouvementRequest represents a request to record a cash register
// line. A line carries an inflow, an outflow or both.
type CreateMouvementRequest struct {
	Date          time.Time       `json:"date" binding:"required"`
	Libelle       string          `json:"libelle" binding:"required,max=200"`
	MontantEntree decimal.Decimal `json:"montant_entree"`
	MontantSortie decimal.Decimal `json:"montant_sortie"`
	Observations  string          `json:"observations" binding:"max=500"`
}

// MouvementResponse represents a ledger line in API responses
type MouvementResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Libelle       string          `json:"libelle"`
	MontantEntree decimal.Decimal `json:"montant_entree"`
	MontantSortie decimal.Decimal `json:"montant_sortie"`
	Net           decimal.Decimal `json:"net"`
	Observations  string          `json:"observations"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToMouvementResponse maps a ledger line to its response shape
func ToMouvementResponse(m *cash.MouvementCaisse) MouvementResponse {
	return MouvementResponse{
		ID:            m.ID,
		Date:          m.Date,
		Libelle:       m.Libelle,
		MontantEntree: m.MontantEntree,
		MontantSortie: m.MontantSortie,
		Net:           m.Net(),
		Observations:  m.Observations,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToMouvementResponses maps a slice of ledger lines
func ToMouvementResponses(mouvements []cash.MouvementCaisse) []MouvementResponse {
	responses := make([]MouvementResponse, len(mouvements))
	for i := range mouvements {
		responses[i] = ToMouvementResponse(&mouvements[i])
	}
	return responses
}

// SoldeResponse aggregates the ledger over the filtered period
type SoldeResponse struct {
	TotalEntrees decimal.Decimal `json:"total_entrees"`
	TotalSorties decimal.Decimal `json:"total_sorties"`
	Solde        decimal.Decimal `json:"solde"`
}

// ListFilter represents the list query options of the cash ledger
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
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

	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		DateFrom: filter.DateDebut,
		DateTo:   filter.DateFin,
		Filters:  make(map[string]any),
	}
}
