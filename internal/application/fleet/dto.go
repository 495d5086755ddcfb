package fleet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// =============================================================================
// Vehicule DTOs
// =============================================================================

// CreateVehiculeRequest represents a request to register a vehicle
type CreateVehiculeRequest struct {
	Matricule       string          `json:"matricule" binding:"required,max=20"`
	Type            string          `json:"type" binding:"required,max=50"`
	Marque          string          `json:"marque" binding:"max=100"`
	Modele          string          `json:"modele" binding:"max=100"`
	Annee           int             `json:"annee"`
	DateAcquisition time.Time       `json:"date_acquisition" binding:"required"`
	PrixAcquisition decimal.Decimal `json:"prix_acquisition"`
}

// ChangerStatutRequest represents a request to move a vehicle to another
// operational status
type ChangerStatutRequest struct {
	Statut string `json:"statut" binding:"required,oneof=actif maintenance hors_service"`
}

// VehiculeResponse represents a vehicle in API responses
type VehiculeResponse struct {
	ID              uuid.UUID       `json:"id"`
	Matricule       string          `json:"matricule"`
	Type            string          `json:"type"`
	Marque          string          `json:"marque"`
	Modele          string          `json:"modele"`
	Annee           int             `json:"annee"`
	DateAcquisition time.Time       `json:"date_acquisition"`
	PrixAcquisition decimal.Decimal `json:"prix_acquisition"`
	Statut          string          `json:"statut"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToVehiculeResponse maps a vehicle to its response shape
func ToVehiculeResponse(v *fleet.Vehicule) VehiculeResponse {
	return VehiculeResponse{
		ID:              v.ID,
		Matricule:       v.Matricule,
		Type:            v.Type,
		Marque:          v.Marque,
		Modele:          v.Modele,
		Annee:           v.Annee,
		DateAcquisition: v.DateAcquisition,
		PrixAcquisition: v.PrixAcquisition,
		Statut:          string(v.Statut),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// ToVehiculeResponses maps a slice of vehicles
func ToVehiculeResponses(vehicules []fleet.Vehicule) []VehiculeResponse {
	responses := make([]VehiculeResponse, len(vehicules))
	for i := range vehicules {
		responses[i] = ToVehiculeResponse(&vehicules[i])
	}
	return responses
}

// =============================================================================
// ConsommationCarburant DTOs
// =============================================================================

// CreateCarburantRequest represents a request to record a week of fuel
// use. When the numero is omitted the next one in the CARB sequence is
// assigned.
type CreateCarburantRequest struct {
	Numero          string          `json:"numero" binding:"max=20"`
	Date            time.Time       `json:"date" binding:"required"`
	VehiculeID      uuid.UUID       `json:"vehicule_id" binding:"required"`
	QuantiteSemaine decimal.Decimal `json:"quantite_semaine"`
	PrixParLitre    decimal.Decimal `json:"prix_par_litre"`
	Observations    string          `json:"observations" binding:"max=500"`
}

// UpdateCarburantRequest represents a request to correct a fuel record
type UpdateCarburantRequest struct {
	QuantiteSemaine decimal.Decimal `json:"quantite_semaine"`
	PrixParLitre    decimal.Decimal `json:"prix_par_litre"`
}

// CarburantResponse represents a fuel record in API responses
type CarburantResponse struct {
	ID              uuid.UUID       `json:"id"`
	Numero          string          `json:"numero"`
	Date            time.Time       `json:"date"`
	VehiculeID      uuid.UUID       `json:"vehicule_id"`
	Vehicule        string          `json:"vehicule,omitempty"`
	QuantiteSemaine decimal.Decimal `json:"quantite_semaine"`
	PrixParLitre    decimal.Decimal `json:"prix_par_litre"`
	MontantSemaine  decimal.Decimal `json:"montant_semaine"`
	MontantMois     decimal.Decimal `json:"montant_mois"`
	Observations    string          `json:"observations"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToCarburantResponse maps a fuel record to its response shape
func ToCarburantResponse(c *fleet.ConsommationCarburant) CarburantResponse {
	return CarburantResponse{
		ID:              c.ID,
		Numero:          c.Numero,
		Date:            c.Date,
		VehiculeID:      c.VehiculeID,
		QuantiteSemaine: c.QuantiteSemaine,
		PrixParLitre:    c.PrixParLitre,
		MontantSemaine:  c.MontantSemaine,
		MontantMois:     c.MontantMois,
		Observations:    c.Observations,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCarburantResponses maps a slice of fuel records
func ToCarburantResponses(consommations []fleet.ConsommationCarburant) []CarburantResponse {
	responses := make([]CarburantResponse, len(consommations))
	for i := range consommations {
		responses[i] = ToCarburantResponse(&consommations[i])
	}
	return responses
}

// =============================================================================
// MaintenanceVehicule DTOs
// =============================================================================

// CreateMaintenanceRequest represents a request to record a service
type CreateMaintenanceRequest struct {
	VehiculeID           uuid.UUID       `json:"vehicule_id" binding:"required"`
	Date                 time.Time       `json:"date" binding:"required"`
	Type                 string          `json:"type" binding:"required,oneof=vidange revision reparation controle autre"`
	Description          string          `json:"description" binding:"max=500"`
	Cout                 decimal.Decimal `json:"cout"`
	Garage               string          `json:"garage" binding:"max=200"`
	ProchaineMaintenance *time.Time      `json:"prochaine_maintenance"`
}

// MaintenanceResponse represents a service in API responses
type MaintenanceResponse struct {
	ID                   uuid.UUID       `json:"id"`
	VehiculeID           uuid.UUID       `json:"vehicule_id"`
	Date                 time.Time       `json:"date"`
	Type                 string          `json:"type"`
	Description          string          `json:"description"`
	Cout                 decimal.Decimal `json:"cout"`
	Garage               string          `json:"garage"`
	ProchaineMaintenance *time.Time      `json:"prochaine_maintenance,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToMaintenanceResponse maps a service to its response shape
func ToMaintenanceResponse(m *fleet.MaintenanceVehicule) MaintenanceResponse {
	return MaintenanceResponse{
		ID:                   m.ID,
		VehiculeID:           m.VehiculeID,
		Date:                 m.Date,
		Type:                 string(m.Type),
		Description:          m.Description,
		Cout:                 m.Cout,
		Garage:               m.Garage,
		ProchaineMaintenance: m.ProchaineMaintenance,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// ToMaintenanceResponses maps a slice of services
func ToMaintenanceResponses(maintenances []fleet.MaintenanceVehicule) []MaintenanceResponse {
	responses := make([]MaintenanceResponse, len(maintenances))
	for i := range maintenances {
		responses[i] = ToMaintenanceResponse(&maintenances[i])
	}
	return responses
}

// ListFilter represents the shared list query options of the module
type ListFilter struct {
	Search     string     `form:"search"`
	DateDebut  *time.Time `form:"date_debut" time_format:"2006-01-02"`
	DateFin    *time.Time `form:"date_fin" time_format:"2006-01-02"`
	VehiculeID *uuid.UUID `form:"vehicule_id"`
	Statut     string     `form:"statut"`
	Type       string     `form:"type"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir"`
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
	if filter.VehiculeID != nil {
		domainFilter.Filters["vehicule_id"] = *filter.VehiculeID
	}
	if filter.Statut != "" {
		domainFilter.Filters["statut"] = filter.Statut
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	return domainFilter
}
