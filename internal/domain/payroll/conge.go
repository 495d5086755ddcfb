package payroll

import (
	"time"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// TypeConge is the category of a leave request
type TypeConge string

const (
	CongeAnnuel    TypeConge = "annuel"
	CongeMaladie   TypeConge = "maladie"
	CongeMaternite TypeConge = "maternite"
	CongeSansSolde TypeConge = "sans_solde"
	CongeAutre     TypeConge = "autre"
)

// IsValid checks if the value is a known leave type
func (t TypeConge) IsValid() bool {
	switch t {
	case CongeAnnuel, CongeMaladie, CongeMaternite, CongeSansSolde, CongeAutre:
		return true
	}
	return false
}

// Conge is a leave period for an employee. nb_jours counts both the
// start and end day.
type Conge struct {
	shared.BaseEntity
	EmployeID uuid.UUID
	Type      TypeConge
	DateDebut time.Time
	DateFin   time.Time
	NbJours   int
	Motif     string
	Approuve  bool
}

// TableName returns the database table name
func (Conge) TableName() string { return "conges" }

// NewConge creates a leave request, pending approval
func NewConge(employeID uuid.UUID, typeConge TypeConge, dateDebut, dateFin time.Time, motif string) (*Conge, error) {
	verr := shared.NewValidationError()
	if employeID == uuid.Nil {
		verr.Add("employe", shared.FieldRequired, "L'employé est requis")
	}
	if !typeConge.IsValid() {
		verr.Add("type", shared.FieldFormat, "Type de congé invalide")
	}
	if dateDebut.IsZero() {
		verr.Add("date_debut", shared.FieldRequired, "La date de début est requise")
	}
	if dateFin.IsZero() {
		verr.Add("date_fin", shared.FieldRequired, "La date de fin est requise")
	}
	if !dateDebut.IsZero() && !dateFin.IsZero() && dateFin.Before(dateDebut) {
		verr.Add("date_fin", shared.FieldRange, "La date de fin doit être postérieure ou égale à la date de début")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	c := &Conge{
		BaseEntity: shared.NewBaseEntity(),
		EmployeID:  employeID,
		Type:       typeConge,
		DateDebut:  dateDebut,
		DateFin:    dateFin,
		Motif:      motif,
	}
	c.Recompute()
	return c, nil
}

// Recompute re-derives nb_jours = (fin − debut) + 1, in calendar days
func (c *Conge) Recompute() {
	debut := time.Date(c.DateDebut.Year(), c.DateDebut.Month(), c.DateDebut.Day(), 0, 0, 0, 0, time.UTC)
	fin := time.Date(c.DateFin.Year(), c.DateFin.Month(), c.DateFin.Day(), 0, 0, 0, 0, time.UTC)
	c.NbJours = int(fin.Sub(debut).Hours()/24) + 1
}

// Approuver marks the leave approved
func (c *Conge) Approuver() {
	c.Approuve = true
	c.Touch()
}
