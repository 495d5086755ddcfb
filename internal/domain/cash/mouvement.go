package cash

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// MouvementCaisse is one line of the cash register ledger. A line can
// carry an inflow, an outflow or both; the net is computed in reports.
type MouvementCaisse struct {
	shared.BaseEntity
	Date          time.Time
	Libelle       string
	MontantEntree decimal.Decimal
	MontantSortie decimal.Decimal
	Observations  string
}

// TableName returns the database table name
func (MouvementCaisse) TableName() string { return "mouvements_caisse" }

// NewMouvementCaisse records a cash register line
func NewMouvementCaisse(date time.Time, libelle string, montantEntree, montantSortie decimal.Decimal, observations string) (*MouvementCaisse, error) {
	libelle = shared.NormalizeName(libelle)

	verr := shared.NewValidationError()
	shared.ValidateDateNotFuture(verr, "date", date)
	if libelle == "" {
		verr.Add("libelle", shared.FieldRequired, "Le libellé est requis")
	}
	if montantEntree.IsNegative() {
		verr.Add("montant_entree", shared.FieldRange, "Le montant d'entrée ne peut pas être négatif")
	}
	if montantSortie.IsNegative() {
		verr.Add("montant_sortie", shared.FieldRange, "Le montant de sortie ne peut pas être négatif")
	}
	if montantEntree.IsZero() && montantSortie.IsZero() {
		verr.Add("montant_entree", shared.FieldRange, "Un mouvement doit porter une entrée ou une sortie")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &MouvementCaisse{
		BaseEntity:    shared.NewBaseEntity(),
		Date:          date,
		Libelle:       libelle,
		MontantEntree: montantEntree.Round(2),
		MontantSortie: montantSortie.Round(2),
		Observations:  observations,
	}, nil
}

// Net returns entree − sortie for this line
func (m *MouvementCaisse) Net() decimal.Decimal {
	return m.MontantEntree.Sub(m.MontantSortie).Round(2)
}
