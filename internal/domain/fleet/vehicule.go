package fleet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// StatutVehicule is the operational status of a vehicle
type StatutVehicule string

const (
	VehiculeActif       StatutVehicule = "actif"
	VehiculeMaintenance StatutVehicule = "maintenance"
	VehiculeHorsService StatutVehicule = "hors_service"
)

// IsValid checks if the value is a known vehicle status
func (s StatutVehicule) IsValid() bool {
	switch s {
	case VehiculeActif, VehiculeMaintenance, VehiculeHorsService:
		return true
	}
	return false
}

// Vehicule is one vehicle of the fleet, identified by its plate number
type Vehicule struct {
	shared.BaseEntity
	Matricule       string `gorm:"uniqueIndex"`
	Type            string
	Marque          string
	Modele          string
	Annee           int
	DateAcquisition time.Time
	PrixAcquisition decimal.Decimal
	Statut          StatutVehicule
}

// TableName returns the database table name
func (Vehicule) TableName() string { return "vehicules" }

// NewVehicule registers a vehicle in the actif status
func NewVehicule(matricule, typeVehicule, marque, modele string, annee int, dateAcquisition time.Time, prixAcquisition decimal.Decimal) (*Vehicule, error) {
	matricule = shared.NormalizeIdentifier(matricule)
	marque = shared.NormalizeName(marque)
	modele = shared.NormalizeName(modele)

	verr := shared.NewValidationError()
	if matricule == "" {
		verr.Add("matricule", shared.FieldRequired, "Le matricule est requis")
	}
	if typeVehicule == "" {
		verr.Add("type", shared.FieldRequired, "Le type de véhicule est requis")
	}
	if annee < 1950 || annee > time.Now().Year()+1 {
		verr.Add("annee", shared.FieldRange, "Année invalide")
	}
	shared.ValidateDateNotFuture(verr, "date_acquisition", dateAcquisition)
	if prixAcquisition.IsNegative() {
		verr.Add("prix_acquisition", shared.FieldRange, "Le prix d'acquisition ne peut pas être négatif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Vehicule{
		BaseEntity:      shared.NewBaseEntity(),
		Matricule:       matricule,
		Type:            typeVehicule,
		Marque:          marque,
		Modele:          modele,
		Annee:           annee,
		DateAcquisition: dateAcquisition,
		PrixAcquisition: prixAcquisition.Round(2),
		Statut:          VehiculeActif,
	}, nil
}

// ChangerStatut moves the vehicle to another operational status
func (v *Vehicule) ChangerStatut(statut StatutVehicule) error {
	if !statut.IsValid() {
		verr := shared.NewValidationError()
		verr.Add("statut", shared.FieldFormat, "Statut invalide (actif, maintenance ou hors_service)")
		return verr
	}
	v.Statut = statut
	v.Touch()
	return nil
}
