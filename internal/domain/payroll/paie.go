package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// PaieSalaire is one month's pay slip for an employee, unique per
// (employe, annee, mois). Gross and net salaries are derived from the
// raw components on every write.
type PaieSalaire struct {
	shared.BaseEntity
	EmployeID    uuid.UUID `gorm:"uniqueIndex:idx_paie_employe_periode"`
	Annee        int       `gorm:"uniqueIndex:idx_paie_employe_periode"`
	Mois         int       `gorm:"uniqueIndex:idx_paie_employe_periode"`
	SalaireBase  decimal.Decimal
	Prime        decimal.Decimal
	HeuresSup    decimal.Decimal
	TauxHeureSup decimal.Decimal
	AutresPrimes decimal.Decimal
	Avances      decimal.Decimal
	Retenues     decimal.Decimal
	SalaireBrut  decimal.Decimal
	SalaireNet   decimal.Decimal
	Payee        bool
	DatePaiement *time.Time
}

// TableName returns the database table name
func (PaieSalaire) TableName() string { return "paies_salaires" }

// NewPaieSalaire creates a pay slip for a month
func NewPaieSalaire(employeID uuid.UUID, annee, mois int, salaireBase, prime, heuresSup, tauxHeureSup, autresPrimes, avances, retenues decimal.Decimal) (*PaieSalaire, error) {
	verr := shared.NewValidationError()
	if employeID == uuid.Nil {
		verr.Add("employe", shared.FieldRequired, "L'employé est requis")
	}
	if annee < 2000 || annee > time.Now().Year()+1 {
		verr.Add("annee", shared.FieldRange, "Année invalide")
	}
	if mois < 1 || mois > 12 {
		verr.Add("mois", shared.FieldRange, "Le mois doit être compris entre 1 et 12")
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"salaire_base", salaireBase},
		{"prime", prime},
		{"heures_sup", heuresSup},
		{"taux_heure_sup", tauxHeureSup},
		{"autres_primes", autresPrimes},
		{"avances", avances},
		{"retenues", retenues},
	} {
		if f.value.IsNegative() {
			verr.Add(f.name, shared.FieldRange, "La valeur ne peut pas être négative")
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	p := &PaieSalaire{
		BaseEntity:   shared.NewBaseEntity(),
		EmployeID:    employeID,
		Annee:        annee,
		Mois:         mois,
		SalaireBase:  salaireBase.Round(2),
		Prime:        prime.Round(2),
		HeuresSup:    heuresSup.Round(2),
		TauxHeureSup: tauxHeureSup.Round(2),
		AutresPrimes: autresPrimes.Round(2),
		Avances:      avances.Round(2),
		Retenues:     retenues.Round(2),
	}
	p.Recompute()
	return p, nil
}

// Recompute re-derives the gross and net salaries:
// brut = base + prime + heures_sup × taux + autres_primes
// net  = brut − avances − retenues
func (p *PaieSalaire) Recompute() {
	p.SalaireBrut = p.SalaireBase.
		Add(p.Prime).
		Add(p.HeuresSup.Mul(p.TauxHeureSup)).
		Add(p.AutresPrimes).
		Round(2)
	p.SalaireNet = p.SalaireBrut.Sub(p.Avances).Sub(p.Retenues).Round(2)
}

// MarquerPayee flags the slip paid on the given date
func (p *PaieSalaire) MarquerPayee(datePaiement time.Time) error {
	verr := shared.NewValidationError()
	shared.ValidateDateNotFuture(verr, "date_paiement", datePaiement)
	if err := verr.ErrOrNil(); err != nil {
		return err
	}
	p.Payee = true
	p.DatePaiement = &datePaiement
	p.Touch()
	return nil
}
