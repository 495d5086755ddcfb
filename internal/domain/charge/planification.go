package charge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// FrequenceCharge is the recurrence of a planned charge
type FrequenceCharge string

const (
	FrequenceMensuelle     FrequenceCharge = "mensuelle"
	FrequenceTrimestrielle FrequenceCharge = "trimestrielle"
	FrequenceSemestrielle  FrequenceCharge = "semestrielle"
	FrequenceAnnuelle      FrequenceCharge = "annuelle"
	FrequencePonctuelle    FrequenceCharge = "ponctuelle"
)

// IsValid checks if the value is a known frequency
func (f FrequenceCharge) IsValid() bool {
	switch f {
	case FrequenceMensuelle, FrequenceTrimestrielle, FrequenceSemestrielle, FrequenceAnnuelle, FrequencePonctuelle:
		return true
	}
	return false
}

// PlanificationCharge is a recurring planned expense used to anticipate
// upcoming charges
type PlanificationCharge struct {
	shared.BaseEntity
	CategorieID       uuid.UUID
	Libelle           string
	MontantPrevu      decimal.Decimal
	Frequence         FrequenceCharge
	ProchaineEcheance time.Time
	Active            bool
}

// TableName returns the database table name
func (PlanificationCharge) TableName() string { return "planifications_charges" }

// NewPlanificationCharge schedules a recurring expense
func NewPlanificationCharge(categorieID uuid.UUID, libelle string, montantPrevu decimal.Decimal, frequence FrequenceCharge, prochaineEcheance time.Time) (*PlanificationCharge, error) {
	libelle = shared.NormalizeName(libelle)

	verr := shared.NewValidationError()
	if categorieID == uuid.Nil {
		verr.Add("categorie", shared.FieldRequired, "La catégorie est requise")
	}
	if libelle == "" {
		verr.Add("libelle", shared.FieldRequired, "Le libellé est requis")
	}
	if montantPrevu.LessThanOrEqual(decimal.Zero) {
		verr.Add("montant_prevu", shared.FieldRange, "Le montant prévu doit être strictement positif")
	}
	if !frequence.IsValid() {
		verr.Add("frequence", shared.FieldFormat, "Fréquence invalide")
	}
	if prochaineEcheance.IsZero() {
		verr.Add("prochaine_echeance", shared.FieldRequired, "La prochaine échéance est requise")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &PlanificationCharge{
		BaseEntity:        shared.NewBaseEntity(),
		CategorieID:       categorieID,
		Libelle:           libelle,
		MontantPrevu:      montantPrevu.Round(2),
		Frequence:         frequence,
		ProchaineEcheance: prochaineEcheance,
		Active:            true,
	}, nil
}

// AvancerEcheance moves the next due date forward one period
func (p *PlanificationCharge) AvancerEcheance() {
	switch p.Frequence {
	case FrequenceMensuelle:
		p.ProchaineEcheance = p.ProchaineEcheance.AddDate(0, 1, 0)
	case FrequenceTrimestrielle:
		p.ProchaineEcheance = p.ProchaineEcheance.AddDate(0, 3, 0)
	case FrequenceSemestrielle:
		p.ProchaineEcheance = p.ProchaineEcheance.AddDate(0, 6, 0)
	case FrequenceAnnuelle:
		p.ProchaineEcheance = p.ProchaineEcheance.AddDate(1, 0, 0)
	case FrequencePonctuelle:
		p.Active = false
	}
	p.Touch()
}
