package payroll

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

var telephoneRe = regexp.MustCompile(`^[0-9 +().-]{6,20}$`)

// Employe is a member of staff. Employees are never deleted; the actif
// flag is toggled instead.
type Employe struct {
	shared.BaseEntity
	Numero           string `gorm:"uniqueIndex"`
	Nom              string
	Prenoms          string
	Matricule        string
	Fonction         string
	Telephone        string
	Adresse          string
	DateEmbauche     time.Time
	SalaireBase      decimal.Decimal
	PrimePerformance decimal.Decimal
	Actif            bool
}

// TableName returns the database table name
func (Employe) TableName() string { return "employes" }

// NewEmploye registers an employee. The numero is caller-provided here;
// the application service generates the next EMP- number when omitted.
func NewEmploye(numero, nom, prenoms, matricule, fonction, telephone, adresse string, dateEmbauche time.Time, salaireBase, primePerformance decimal.Decimal) (*Employe, error) {
	numero = shared.NormalizeIdentifier(numero)
	nom = shared.NormalizeName(nom)
	prenoms = shared.NormalizeName(prenoms)
	matricule = shared.NormalizeIdentifier(matricule)
	fonction = shared.NormalizeName(fonction)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixEmploye, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: EMP-0001")
	}
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom est requis")
	}
	if prenoms == "" {
		verr.Add("prenoms", shared.FieldRequired, "Les prénoms sont requis")
	}
	if fonction == "" {
		verr.Add("fonction", shared.FieldRequired, "La fonction est requise")
	}
	if telephone != "" && !telephoneRe.MatchString(telephone) {
		verr.Add("telephone", shared.FieldFormat, "Numéro de téléphone invalide")
	}
	shared.ValidateDateNotFuture(verr, "date_embauche", dateEmbauche)
	if salaireBase.IsNegative() {
		verr.Add("salaire_base", shared.FieldRange, "Le salaire de base ne peut pas être négatif")
	}
	if primePerformance.IsNegative() {
		verr.Add("prime_performance", shared.FieldRange, "La prime de performance ne peut pas être négative")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Employe{
		BaseEntity:       shared.NewBaseEntity(),
		Numero:           numero,
		Nom:              nom,
		Prenoms:          prenoms,
		Matricule:        matricule,
		Fonction:         fonction,
		Telephone:        telephone,
		Adresse:          adresse,
		DateEmbauche:     dateEmbauche,
		SalaireBase:      salaireBase.Round(2),
		PrimePerformance: primePerformance.Round(2),
		Actif:            true,
	}, nil
}

// Update replaces the mutable fields of the employee. The numero never
// changes after registration.
func (e *Employe) Update(nom, prenoms, matricule, fonction, telephone, adresse string, dateEmbauche time.Time, salaireBase, primePerformance decimal.Decimal) error {
	nom = shared.NormalizeName(nom)
	prenoms = shared.NormalizeName(prenoms)
	matricule = shared.NormalizeIdentifier(matricule)
	fonction = shared.NormalizeName(fonction)

	verr := shared.NewValidationError()
	if nom == "" {
		verr.Add("nom", shared.FieldRequired, "Le nom est requis")
	}
	if prenoms == "" {
		verr.Add("prenoms", shared.FieldRequired, "Les prénoms sont requis")
	}
	if fonction == "" {
		verr.Add("fonction", shared.FieldRequired, "La fonction est requise")
	}
	if telephone != "" && !telephoneRe.MatchString(telephone) {
		verr.Add("telephone", shared.FieldFormat, "Numéro de téléphone invalide")
	}
	shared.ValidateDateNotFuture(verr, "date_embauche", dateEmbauche)
	if salaireBase.IsNegative() {
		verr.Add("salaire_base", shared.FieldRange, "Le salaire de base ne peut pas être négatif")
	}
	if primePerformance.IsNegative() {
		verr.Add("prime_performance", shared.FieldRange, "La prime de performance ne peut pas être négative")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	e.Nom = nom
	e.Prenoms = prenoms
	e.Matricule = matricule
	e.Fonction = fonction
	e.Telephone = telephone
	e.Adresse = adresse
	e.DateEmbauche = dateEmbauche
	e.SalaireBase = salaireBase.Round(2)
	e.PrimePerformance = primePerformance.Round(2)
	e.Touch()
	return nil
}

// NomComplet returns "NOM PRENOMS"
func (e *Employe) NomComplet() string {
	if e.Prenoms == "" {
		return e.Nom
	}
	return e.Nom + " " + e.Prenoms
}

// Desactiver marks the employee inactive instead of deleting the record
func (e *Employe) Desactiver() {
	e.Actif = false
	e.Touch()
}

// Reactiver marks the employee active again
func (e *Employe) Reactiver() {
	e.Actif = true
	e.Touch()
}
