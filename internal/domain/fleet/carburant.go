package fleet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

var quatreSemaines = decimal.NewFromInt(4)

// ConsommationCarburant is one week of fuel consumption for a vehicle.
// The weekly amount is derived from quantity and price per litre; the
// monthly projection is four weeks.
type ConsommationCarburant struct {
	shared.BaseEntity
	Numero          string `gorm:"uniqueIndex"`
	Date            time.Time
	VehiculeID      uuid.UUID
	QuantiteSemaine decimal.Decimal
	PrixParLitre    decimal.Decimal
	MontantSemaine  decimal.Decimal
	MontantMois     decimal.Decimal
	Observations    string
}

// TableName returns the database table name
func (ConsommationCarburant) TableName() string { return "consommations_carburant" }

// NewConsommationCarburant records a week of fuel use for a vehicle
func NewConsommationCarburant(numero string, date time.Time, vehiculeID uuid.UUID, quantiteSemaine, prixParLitre decimal.Decimal, observations string) (*ConsommationCarburant, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixCarburant, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: CARB0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if vehiculeID == uuid.Nil {
		verr.Add("vehicule", shared.FieldRequired, "Le véhicule est requis")
	}
	if quantiteSemaine.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_semaine", shared.FieldRange, "La quantité hebdomadaire doit être strictement positive")
	}
	if prixParLitre.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_par_litre", shared.FieldRange, "Le prix par litre doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	c := &ConsommationCarburant{
		BaseEntity:      shared.NewBaseEntity(),
		Numero:          numero,
		Date:            date,
		VehiculeID:      vehiculeID,
		QuantiteSemaine: quantiteSemaine.Round(2),
		PrixParLitre:    prixParLitre.Round(2),
		Observations:    observations,
	}
	c.Recompute()
	return c, nil
}

// UpdateConsommation updates the raw inputs and re-derives both amounts
func (c *ConsommationCarburant) UpdateConsommation(quantiteSemaine, prixParLitre decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantiteSemaine.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_semaine", shared.FieldRange, "La quantité hebdomadaire doit être strictement positive")
	}
	if prixParLitre.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_par_litre", shared.FieldRange, "Le prix par litre doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	c.QuantiteSemaine = quantiteSemaine.Round(2)
	c.PrixParLitre = prixParLitre.Round(2)
	c.Recompute()
	c.Touch()
	return nil
}

// Recompute re-derives montant_semaine = quantite × prix and
// montant_mois = montant_semaine × 4
func (c *ConsommationCarburant) Recompute() {
	c.MontantSemaine = c.QuantiteSemaine.Mul(c.PrixParLitre).Round(2)
	c.MontantMois = c.MontantSemaine.Mul(quatreSemaines).Round(2)
}
