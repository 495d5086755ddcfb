package profit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

var cent = decimal.NewFromInt(100)

// AnalyseProfit compares the purchase and sale sides of one product in
// one store over a period. All amounts and margins are derived from the
// raw quantities and prices on every write.
type AnalyseProfit struct {
	shared.BaseEntity
	Numero            string `gorm:"uniqueIndex"`
	Date              time.Time
	MagasinID         uuid.UUID
	ProduitID         uuid.UUID
	CommercialID      *uuid.UUID
	QuantiteAchetee   decimal.Decimal
	PrixAchatUnitaire decimal.Decimal
	QuantiteVendue    decimal.Decimal
	PrixVenteUnitaire decimal.Decimal
	ChargesAssociees  decimal.Decimal
	MontantAchat      decimal.Decimal
	MontantVente      decimal.Decimal
	ProfitBrut        decimal.Decimal
	ProfitNet         decimal.Decimal
}

// TableName returns the database table name
func (AnalyseProfit) TableName() string { return "analyses_profit" }

// NewAnalyseProfit creates a profit analysis line
func NewAnalyseProfit(numero string, date time.Time, magasinID, produitID uuid.UUID, commercialID *uuid.UUID, quantiteAchetee, prixAchatUnitaire, quantiteVendue, prixVenteUnitaire, chargesAssociees decimal.Decimal) (*AnalyseProfit, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixProfit, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: PRF0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if quantiteAchetee.IsNegative() {
		verr.Add("quantite_achetee", shared.FieldRange, "La quantité achetée ne peut pas être négative")
	}
	if prixAchatUnitaire.IsNegative() {
		verr.Add("prix_achat_unitaire", shared.FieldRange, "Le prix d'achat unitaire ne peut pas être négatif")
	}
	if quantiteVendue.IsNegative() {
		verr.Add("quantite_vendue", shared.FieldRange, "La quantité vendue ne peut pas être négative")
	}
	if prixVenteUnitaire.IsNegative() {
		verr.Add("prix_vente_unitaire", shared.FieldRange, "Le prix de vente unitaire ne peut pas être négatif")
	}
	if chargesAssociees.IsNegative() {
		verr.Add("charges_associees", shared.FieldRange, "Les charges associées ne peuvent pas être négatives")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	a := &AnalyseProfit{
		BaseEntity:        shared.NewBaseEntity(),
		Numero:            numero,
		Date:              date,
		MagasinID:         magasinID,
		ProduitID:         produitID,
		CommercialID:      commercialID,
		QuantiteAchetee:   quantiteAchetee.Round(2),
		PrixAchatUnitaire: prixAchatUnitaire.Round(2),
		QuantiteVendue:    quantiteVendue.Round(2),
		PrixVenteUnitaire: prixVenteUnitaire.Round(2),
		ChargesAssociees:  chargesAssociees.Round(2),
	}
	a.Recompute()
	return a, nil
}

// Update replaces the raw quantities, prices and charges of the line and
// re-derives every amount from them
func (a *AnalyseProfit) Update(quantiteAchetee, prixAchatUnitaire, quantiteVendue, prixVenteUnitaire, chargesAssociees decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantiteAchetee.IsNegative() {
		verr.Add("quantite_achetee", shared.FieldRange, "La quantité achetée ne peut pas être négative")
	}
	if prixAchatUnitaire.IsNegative() {
		verr.Add("prix_achat_unitaire", shared.FieldRange, "Le prix d'achat unitaire ne peut pas être négatif")
	}
	if quantiteVendue.IsNegative() {
		verr.Add("quantite_vendue", shared.FieldRange, "La quantité vendue ne peut pas être négative")
	}
	if prixVenteUnitaire.IsNegative() {
		verr.Add("prix_vente_unitaire", shared.FieldRange, "Le prix de vente unitaire ne peut pas être négatif")
	}
	if chargesAssociees.IsNegative() {
		verr.Add("charges_associees", shared.FieldRange, "Les charges associées ne peuvent pas être négatives")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	a.QuantiteAchetee = quantiteAchetee.Round(2)
	a.PrixAchatUnitaire = prixAchatUnitaire.Round(2)
	a.QuantiteVendue = quantiteVendue.Round(2)
	a.PrixVenteUnitaire = prixVenteUnitaire.Round(2)
	a.ChargesAssociees = chargesAssociees.Round(2)
	a.Recompute()
	a.Touch()
	return nil
}

// Recompute re-derives the purchase and sale totals and both profit lines:
// montant_achat = quantite achetée × prix achat
// montant_vente = quantite vendue × prix vente
// profit_brut   = vente − achat
// profit_net    = brut − charges
func (a *AnalyseProfit) Recompute() {
	a.MontantAchat = a.QuantiteAchetee.Mul(a.PrixAchatUnitaire).Round(2)
	a.MontantVente = a.QuantiteVendue.Mul(a.PrixVenteUnitaire).Round(2)
	a.ProfitBrut = a.MontantVente.Sub(a.MontantAchat).Round(2)
	a.ProfitNet = a.ProfitBrut.Sub(a.ChargesAssociees).Round(2)
}

// MargeBrute returns profit_brut / montant_vente as a percentage, zero
// when nothing was sold
func (a *AnalyseProfit) MargeBrute() decimal.Decimal {
	if a.MontantVente.IsZero() {
		return decimal.Zero
	}
	return a.ProfitBrut.Div(a.MontantVente).Mul(cent).Round(2)
}

// MargeNette returns profit_net / montant_vente as a percentage, zero
// when nothing was sold
func (a *AnalyseProfit) MargeNette() decimal.Decimal {
	if a.MontantVente.IsZero() {
		return decimal.Zero
	}
	return a.ProfitNet.Div(a.MontantVente).Mul(cent).Round(2)
}

// Rentabilite returns profit_net / montant_achat as a percentage, zero
// when nothing was bought
func (a *AnalyseProfit) Rentabilite() decimal.Decimal {
	if a.MontantAchat.IsZero() {
		return decimal.Zero
	}
	return a.ProfitNet.Div(a.MontantAchat).Mul(cent).Round(2)
}
