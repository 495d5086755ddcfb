package charge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// ModeReglement identifies how a charge was settled
type ModeReglement string

const (
	ReglementEspeces     ModeReglement = "especes"
	ReglementCheque      ModeReglement = "cheque"
	ReglementVirement    ModeReglement = "virement"
	ReglementMobileMoney ModeReglement = "mobile_money"
)

// IsValid checks if the value is a known settlement mode
func (m ModeReglement) IsValid() bool {
	switch m {
	case ReglementEspeces, ReglementCheque, ReglementVirement, ReglementMobileMoney:
		return true
	}
	return false
}

// Charge is one operating expense. A charge flagged paid must carry its
// payment date.
type Charge struct {
	shared.BaseEntity
	Numero        string `gorm:"uniqueIndex"`
	Date          time.Time
	CategorieID   uuid.UUID
	Libelle       string
	Montant       decimal.Decimal
	Fournisseur   string
	NumeroFacture string
	ModePaiement  ModeReglement
	Payee         bool
	DatePaiement  *time.Time
	Observations  string
}

// TableName returns the database table name
func (Charge) TableName() string { return "charges" }

// NewCharge creates an operating expense. The numero is caller-provided
// here; the application service generates the next CHG number when omitted.
func NewCharge(numero string, date time.Time, categorieID uuid.UUID, libelle string, montant decimal.Decimal, fournisseur, numeroFacture string, modePaiement ModeReglement, payee bool, datePaiement *time.Time, observations string) (*Charge, error) {
	numero = shared.NormalizeIdentifier(numero)
	libelle = shared.NormalizeName(libelle)
	fournisseur = shared.NormalizeName(fournisseur)
	numeroFacture = shared.NormalizeIdentifier(numeroFacture)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixCharge, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: CHG0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if categorieID == uuid.Nil {
		verr.Add("categorie", shared.FieldRequired, "La catégorie est requise")
	}
	if libelle == "" {
		verr.Add("libelle", shared.FieldRequired, "Le libellé est requis")
	}
	if montant.LessThanOrEqual(decimal.Zero) {
		verr.Add("montant", shared.FieldRange, "Le montant doit être strictement positif")
	}
	if !modePaiement.IsValid() {
		verr.Add("mode_paiement", shared.FieldFormat, "Mode de paiement invalide")
	}
	if payee && datePaiement == nil {
		verr.Add("date_paiement", shared.FieldRequiredIf, "La date de paiement est requise pour une charge payée")
	}
	if datePaiement != nil {
		shared.ValidateDateNotFuture(verr, "date_paiement", *datePaiement)
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Charge{
		BaseEntity:    shared.NewBaseEntity(),
		Numero:        numero,
		Date:          date,
		CategorieID:   categorieID,
		Libelle:       libelle,
		Montant:       montant.Round(2),
		Fournisseur:   fournisseur,
		NumeroFacture: numeroFacture,
		ModePaiement:  modePaiement,
		Payee:         payee,
		DatePaiement:  datePaiement,
		Observations:  observations,
	}, nil
}

// MarquerPayee flags the charge paid on the given date
func (c *Charge) MarquerPayee(datePaiement time.Time) error {
	verr := shared.NewValidationError()
	shared.ValidateDateNotFuture(verr, "date_paiement", datePaiement)
	if err := verr.ErrOrNil(); err != nil {
		return err
	}
	c.Payee = true
	c.DatePaiement = &datePaiement
	c.Touch()
	return nil
}
