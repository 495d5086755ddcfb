package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CreditClient tracks a sale on deferred payment terms with its running
// balance. montant_total, solde_restant and est_solde are derived and
// recomputed from the raw fields on every write; montant_paye is the sum
// of recorded payments, maintained whenever a Paiement is saved.
type CreditClient struct {
	shared.BaseEntity
	Numero       string `gorm:"uniqueIndex"`
	Date         time.Time
	ClientID     uuid.UUID
	MagasinID    uuid.UUID
	ProduitID    uuid.UUID
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	MontantTotal decimal.Decimal
	MontantPaye  decimal.Decimal
	SoldeRestant decimal.Decimal
	EstSolde     bool
}

// TableName returns the database table name
func (CreditClient) TableName() string { return "credits_clients" }

// NewCreditClient creates a new customer credit with a zero paid total
func NewCreditClient(numero string, date time.Time, clientID, magasinID, produitID uuid.UUID, quantite, prixUnitaire decimal.Decimal) (*CreditClient, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixCredit, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: CRD0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if clientID == uuid.Nil {
		verr.Add("client", shared.FieldRequired, "Le client est requis")
	}
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if quantite.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite", shared.FieldRange, "La quantité doit être strictement positive")
	}
	if prixUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_unitaire", shared.FieldRange, "Le prix unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	c := &CreditClient{
		BaseEntity:   shared.NewBaseEntity(),
		Numero:       numero,
		Date:         date,
		ClientID:     clientID,
		MagasinID:    magasinID,
		ProduitID:    produitID,
		Quantite:     quantite.Round(2),
		PrixUnitaire: prixUnitaire.Round(2),
		MontantPaye:  decimal.Zero,
	}
	c.Recompute()
	return c, nil
}

// UpdateQuantiteEtPrix updates the raw inputs and re-derives the totals
func (c *CreditClient) UpdateQuantiteEtPrix(quantite, prixUnitaire decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantite.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite", shared.FieldRange, "La quantité doit être strictement positive")
	}
	if prixUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_unitaire", shared.FieldRange, "Le prix unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	c.Quantite = quantite.Round(2)
	c.PrixUnitaire = prixUnitaire.Round(2)
	c.Recompute()
	c.Touch()
	return nil
}

// ApplyMontantPaye replaces the paid total with the authoritative sum of
// the credit's payments and re-derives the balance
func (c *CreditClient) ApplyMontantPaye(totalPaiements decimal.Decimal) {
	c.MontantPaye = totalPaiements.Round(2)
	c.Recompute()
	c.Touch()
}

// Recompute re-derives montant_total, solde_restant and est_solde from
// the current raw fields
func (c *CreditClient) Recompute() {
	c.MontantTotal = c.Quantite.Mul(c.PrixUnitaire).Round(2)
	c.SoldeRestant = c.MontantTotal.Sub(c.MontantPaye).Round(2)
	c.EstSolde = c.SoldeRestant.LessThanOrEqual(decimal.Zero)
}

// TauxRecouvrement returns montant_paye / montant_total as a percentage,
// zero when the total is zero
func (c *CreditClient) TauxRecouvrement() decimal.Decimal {
	if c.MontantTotal.IsZero() {
		return decimal.Zero
	}
	return c.MontantPaye.Div(c.MontantTotal).Mul(decimal.NewFromInt(100)).Round(2)
}
