package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// ModePaiement identifies how a payment was settled
type ModePaiement string

const (
	ModeEspeces     ModePaiement = "especes"
	ModeCheque      ModePaiement = "cheque"
	ModeVirement    ModePaiement = "virement"
	ModeMobileMoney ModePaiement = "mobile_money"
)

// IsValid checks if the value is a known payment mode
func (m ModePaiement) IsValid() bool {
	switch m {
	case ModeEspeces, ModeCheque, ModeVirement, ModeMobileMoney:
		return true
	}
	return false
}

// String returns the string representation
func (m ModePaiement) String() string { return string(m) }

// Paiement is one installment against a customer credit. Saving a payment
// triggers a recompute of the parent credit's paid total as the sum of its
// payments; the two writes share one transaction.
type Paiement struct {
	shared.BaseEntity
	CreditID  uuid.UUID
	Date      time.Time
	Montant   decimal.Decimal
	Mode      ModePaiement
	Reference string
}

// TableName returns the database table name
func (Paiement) TableName() string { return "paiements" }

// NewPaiement creates a new payment against a credit
func NewPaiement(creditID uuid.UUID, date time.Time, montant decimal.Decimal, mode ModePaiement, reference string) (*Paiement, error) {
	verr := shared.NewValidationError()
	if creditID == uuid.Nil {
		verr.Add("credit", shared.FieldRequired, "Le crédit est requis")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if montant.LessThanOrEqual(decimal.Zero) {
		verr.Add("montant", shared.FieldRange, "Le montant doit être strictement positif")
	}
	if !mode.IsValid() {
		verr.Add("mode", shared.FieldFormat, "Mode de paiement invalide")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Paiement{
		BaseEntity: shared.NewBaseEntity(),
		CreditID:   creditID,
		Date:       date,
		Montant:    montant.Round(2),
		Mode:       mode,
		Reference:  shared.NormalizeIdentifier(reference),
	}, nil
}
