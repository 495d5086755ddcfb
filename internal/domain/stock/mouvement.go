package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Stock level thresholds, in units
var (
	seuilRupture = decimal.NewFromInt(5)
	seuilAlerte  = decimal.NewFromInt(10)
)

// MouvementStock records one day's stock movement for a product in a
// store. stock_final is derived from the initial and sold quantities.
type MouvementStock struct {
	shared.BaseEntity
	Numero        string `gorm:"uniqueIndex"`
	Date          time.Time
	MagasinID     uuid.UUID
	ProduitID     uuid.UUID
	CommercialID  *uuid.UUID
	StockInitial  decimal.Decimal
	StockVendu    decimal.Decimal
	StockFinal    decimal.Decimal
	MontantVentes decimal.Decimal
}

// TableName returns the database table name
func (MouvementStock) TableName() string { return "mouvements_stock" }

// NewMouvementStock creates a new stock movement. The commercial is
// optional; every other reference is required.
func NewMouvementStock(numero string, date time.Time, magasinID, produitID uuid.UUID, commercialID *uuid.UUID, stockInitial, stockVendu, montantVentes decimal.Decimal) (*MouvementStock, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixMouvement, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: STK0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if stockInitial.IsNegative() {
		verr.Add("stock_initial", shared.FieldRange, "Le stock initial ne peut pas être négatif")
	}
	if stockVendu.IsNegative() {
		verr.Add("stock_vendu", shared.FieldRange, "Le stock vendu ne peut pas être négatif")
	}
	if montantVentes.IsNegative() {
		verr.Add("montant_ventes", shared.FieldRange, "Le montant des ventes ne peut pas être négatif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	m := &MouvementStock{
		BaseEntity:    shared.NewBaseEntity(),
		Numero:        numero,
		Date:          date,
		MagasinID:     magasinID,
		ProduitID:     produitID,
		CommercialID:  commercialID,
		StockInitial:  stockInitial.Round(2),
		StockVendu:    stockVendu.Round(2),
		MontantVentes: montantVentes.Round(2),
	}
	m.Recompute()
	return m, nil
}

// UpdateQuantites updates the raw quantities and re-derives the final stock
func (m *MouvementStock) UpdateQuantites(stockInitial, stockVendu, montantVentes decimal.Decimal) error {
	verr := shared.NewValidationError()
	if stockInitial.IsNegative() {
		verr.Add("stock_initial", shared.FieldRange, "Le stock initial ne peut pas être négatif")
	}
	if stockVendu.IsNegative() {
		verr.Add("stock_vendu", shared.FieldRange, "Le stock vendu ne peut pas être négatif")
	}
	if montantVentes.IsNegative() {
		verr.Add("montant_ventes", shared.FieldRange, "Le montant des ventes ne peut pas être négatif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	m.StockInitial = stockInitial.Round(2)
	m.StockVendu = stockVendu.Round(2)
	m.MontantVentes = montantVentes.Round(2)
	m.Recompute()
	m.Touch()
	return nil
}

// Recompute re-derives stock_final = stock_initial − stock_vendu
func (m *MouvementStock) Recompute() {
	m.StockFinal = m.StockInitial.Sub(m.StockVendu).Round(2)
}

// EnRupture reports a final stock below the hard shortage threshold
func (m *MouvementStock) EnRupture() bool {
	return m.StockFinal.LessThan(seuilRupture)
}

// EnAlerte reports a final stock below the warning threshold
func (m *MouvementStock) EnAlerte() bool {
	return m.StockFinal.LessThan(seuilAlerte)
}
