package fleet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// TypeMaintenance is the nature of a vehicle service
type TypeMaintenance string

const (
	MaintenanceVidange    TypeMaintenance = "vidange"
	MaintenanceRevision   TypeMaintenance = "revision"
	MaintenanceReparation TypeMaintenance = "reparation"
	MaintenanceControle   TypeMaintenance = "controle"
	MaintenanceAutre      TypeMaintenance = "autre"
)

// IsValid checks if the value is a known maintenance type
func (t TypeMaintenance) IsValid() bool {
	switch t {
	case MaintenanceVidange, MaintenanceRevision, MaintenanceReparation, MaintenanceControle, MaintenanceAutre:
		return true
	}
	return false
}

// MaintenanceVehicule records one service done on a vehicle
type MaintenanceVehicule struct {
	shared.BaseEntity
	VehiculeID           uuid.UUID
	Date                 time.Time
	Type                 TypeMaintenance
	Description          string
	Cout                 decimal.Decimal
	Garage               string
	ProchaineMaintenance *time.Time
}

// TableName returns the database table name
func (MaintenanceVehicule) TableName() string { return "maintenances_vehicules" }

// NewMaintenanceVehicule records a service on a vehicle. The next
// scheduled service, when given, must come after the service date.
func NewMaintenanceVehicule(vehiculeID uuid.UUID, date time.Time, typeMaint TypeMaintenance, description string, cout decimal.Decimal, garage string, prochaine *time.Time) (*MaintenanceVehicule, error) {
	verr := shared.NewValidationError()
	if vehiculeID == uuid.Nil {
		verr.Add("vehicule", shared.FieldRequired, "Le véhicule est requis")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if !typeMaint.IsValid() {
		verr.Add("type", shared.FieldFormat, "Type de maintenance invalide")
	}
	if cout.IsNegative() {
		verr.Add("cout", shared.FieldRange, "Le coût ne peut pas être négatif")
	}
	if prochaine != nil && !prochaine.After(date) {
		verr.Add("prochaine_maintenance", shared.FieldRange, "La prochaine maintenance doit être postérieure à la date d'intervention")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &MaintenanceVehicule{
		BaseEntity:           shared.NewBaseEntity(),
		VehiculeID:           vehiculeID,
		Date:                 date,
		Type:                 typeMaint,
		Description:          description,
		Cout:                 cout.Round(2),
		Garage:               shared.NormalizeName(garage),
		ProchaineMaintenance: prochaine,
	}, nil
}
