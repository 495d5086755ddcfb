package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// Employe DTOs
// =============================================================================

// CreateEmployeRequest represents a request to register an employee. When
// the numero is omitted the next one in the EMP- sequence is assigned.
type CreateEmployeRequest struct {
	Numero           string          `json:"numero" binding:"max=20"`
	Nom              string          `json:"nom" binding:"required,max=100"`
	Prenoms          string          `json:"prenoms" binding:"required,max=200"`
	Matricule        string          `json:"matricule" binding:"max=50"`
	Fonction         string          `json:"fonction" binding:"required,max=100"`
	Telephone        string          `json:"telephone" binding:"max=20"`
	Adresse          string          `json:"adresse" binding:"max=500"`
	DateEmbauche     time.Time       `json:"date_embauche" binding:"required"`
	SalaireBase      decimal.Decimal `json:"salaire_base"`
	PrimePerformance decimal.Decimal `json:"prime_performance"`
}

// UpdateEmployeRequest represents a request to update an employee
type UpdateEmployeRequest struct {
	Nom              string          `json:"nom" binding:"required,max=100"`
	Prenoms          string          `json:"prenoms" binding:"required,max=200"`
	Matricule        string          `json:"matricule" binding:"max=50"`
	Fonction         string          `json:"fonction" binding:"required,max=100"`
	Telephone        string          `json:"telephone" binding:"max=20"`
	Adresse          string          `json:"adresse" binding:"max=500"`
	DateEmbauche     time.Time       `json:"date_embauche" binding:"required"`
	SalaireBase      decimal.Decimal `json:"salaire_base"`
	PrimePerformance decimal.Decimal `json:"prime_performance"`
}

// EmployeResponse represents an employee in API responses
type EmployeResponse struct {
	ID               uuid.UUID       `json:"id"`
	Numero           string          `json:"numero"`
	Nom              string          `json:"nom"`
	Prenoms          string          `json:"prenoms"`
	NomComplet       string          `json:"nom_complet"`
	Matricule        string          `json:"matricule"`
	Fonction         string          `json:"fonction"`
	Telephone        string          `json:"telephone"`
	Adresse          string          `json:"adresse"`
	DateEmbauche     time.Time       `json:"date_embauche"`
	SalaireBase      decimal.Decimal `json:"salaire_base"`
	PrimePerformance decimal.Decimal `json:"prime_performance"`
	Actif            bool            `json:"actif"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToEmployeResponse maps an employee to its response shape
func ToEmployeResponse(e *payroll.Employe) EmployeResponse {
	return EmployeResponse{
		ID:               e.ID,
		Numero:           e.Numero,
		Nom:              e.Nom,
		Prenoms:          e.Prenoms,
		NomComplet:       e.NomComplet(),
		Matricule:        e.Matricule,
		Fonction:         e.Fonction,
		Telephone:        e.Telephone,
		Adresse:          e.Adresse,
		DateEmbauche:     e.DateEmbauche,
		SalaireBase:      e.SalaireBase,
		PrimePerformance: e.PrimePerformance,
		Actif:            e.Actif,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToEmployeResponses maps a slice of employees
func ToEmployeResponses(employes []payroll.Employe) []EmployeResponse {
	responses := make([]EmployeResponse, len(employes))
	for i := range employes {
		responses[i] = ToEmployeResponse(&employes[i])
	}
	return responses
}

// =============================================================================
// PaieSalaire DTOs
// =============================================================================

// CreatePaieRequest represents a request to issue a pay slip for a month
type CreatePaieRequest struct {
	EmployeID    uuid.UUID       `json:"employe_id" binding:"required"`
	Annee        int             `json:"annee" binding:"required"`
	Mois         int             `json:"mois" binding:"required"`
	SalaireBase  decimal.Decimal `json:"salaire_base"`
	Prime        decimal.Decimal `json:"prime"`
	HeuresSup    decimal.Decimal `json:"heures_sup"`
	TauxHeureSup decimal.Decimal `json:"taux_heure_sup"`
	AutresPrimes decimal.Decimal `json:"autres_primes"`
	Avances      decimal.Decimal `json:"avances"`
	Retenues     decimal.Decimal `json:"retenues"`
}

// MarquerPayeeRequest flags a slip paid on a date
type MarquerPayeeRequest struct {
	DatePaiement time.Time `json:"date_paiement" binding:"required"`
}

// PaieResponse represents a pay slip in API responses
type PaieResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeID    uuid.UUID       `json:"employe_id"`
	Employe      string          `json:"employe,omitempty"`
	Annee        int             `json:"annee"`
	Mois         int             `json:"mois"`
	SalaireBase  decimal.Decimal `json:"salaire_base"`
	Prime        decimal.Decimal `json:"prime"`
	HeuresSup    decimal.Decimal `json:"heures_sup"`
	TauxHeureSup decimal.Decimal `json:"taux_heure_sup"`
	AutresPrimes decimal.Decimal `json:"autres_primes"`
	Avances      decimal.Decimal `json:"avances"`
	Retenues     decimal.Decimal `json:"retenues"`
	SalaireBrut  decimal.Decimal `json:"salaire_brut"`
	SalaireNet   decimal.Decimal `json:"salaire_net"`
	Payee        bool            `json:"payee"`
	DatePaiement *time.Time      `json:"date_paiement,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToPaieResponse maps a pay slip to its response shape
func ToPaieResponse(p *payroll.PaieSalaire) PaieResponse {
	return PaieResponse{
		ID:           p.ID,
		EmployeID:    p.EmployeID,
		Annee:        p.Annee,
		Mois:         p.Mois,
		SalaireBase:  p.SalaireBase,
		Prime:        p.Prime,
		HeuresSup:    p.HeuresSup,
		TauxHeureSup: p.TauxHeureSup,
		AutresPrimes: p.AutresPrimes,
		Avances:      p.Avances,
		Retenues:     p.Retenues,
		SalaireBrut:  p.SalaireBrut,
		SalaireNet:   p.SalaireNet,
		Payee:        p.Payee,
		DatePaiement: p.DatePaiement,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPaieResponses maps a slice of pay slips
func ToPaieResponses(paies []payroll.PaieSalaire) []PaieResponse {
	responses := make([]PaieResponse, len(paies))
	for i := range paies {
		responses[i] = ToPaieResponse(&paies[i])
	}
	return responses
}

// =============================================================================
// Conge DTOs
// =============================================================================

// CreateCongeRequest represents a leave request
type CreateCongeRequest struct {
	EmployeID uuid.UUID `json:"employe_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=annuel maladie maternite sans_solde autre"`
	DateDebut time.Time `json:"date_debut" binding:"required"`
	DateFin   time.Time `json:"date_fin" binding:"required"`
	Motif     string    `json:"motif" binding:"max=500"`
}

// CongeResponse represents a leave period in API responses
type CongeResponse struct {
	ID        uuid.UUID `json:"id"`
	EmployeID uuid.UUID `json:"employe_id"`
	Type      string    `json:"type"`
	DateDebut time.Time `json:"date_debut"`
	DateFin   time.Time `json:"date_fin"`
	NbJours   int       `json:"nb_jours"`
	Motif     string    `json:"motif"`
	Approuve  bool      `json:"approuve"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCongeResponse maps a leave period to its response shape
func ToCongeResponse(c *payroll.Conge) CongeResponse {
	return CongeResponse{
		ID:        c.ID,
		EmployeID: c.EmployeID,
		Type:      string(c.Type),
		DateDebut: c.DateDebut,
		DateFin:   c.DateFin,
		NbJours:   c.NbJours,
		Motif:     c.Motif,
		Approuve:  c.Approuve,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCongeResponses maps a slice of leave periods
func ToCongeResponses(conges []payroll.Conge) []CongeResponse {
	responses := make([]CongeResponse, len(conges))
	for i := range conges {
		responses[i] = ToCongeResponse(&conges[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search    string     `form:"search"`
	DateDebut *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin   *time.Time `form:"date_fin" time_format:"2006-01-02"`
	EmployeID *uuid.UUID `form:"employe_id"`
	Annee     *int       `form:"annee"`
	Mois      *int       `form:"mois"`
	Actif     *bool      `form:"actif"`
	Type      string     `form:"type"`
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
	if filter.EmployeID != nil {
		domainFilter.Filters["employe_id"] = *filter.EmployeID
	}
	if filter.Annee != nil {
		domainFilter.Filters["annee"] = *filter.Annee
	}
	if filter.Mois != nil {
		domainFilter.Filters["mois"] = *filter.Mois
	}
	if filter.Actif != nil {
		domainFilter.Filters["actif"] = *filter.Actif
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	return domainFilter
}
