package supply

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// Livraison represents one supplier delivery of a product. The purchase
// total is a derived field: it is recomputed from the raw quantity and unit
// price on every write and a stored value is never trusted.
type Livraison struct {
	shared.BaseEntity
	Numero            string `gorm:"uniqueIndex"`
	Date              time.Time
	FournisseurID     uuid.UUID
	ProduitID         uuid.UUID
	QuantiteLivree    decimal.Decimal
	PrixAchatUnitaire decimal.Decimal
	MontantTotalAchat decimal.Decimal
	Observations      string
}

// TableName returns the database table name
func (Livraison) TableName() string { return "livraisons" }

// NewLivraison creates a new delivery record. Every violated field is
// reported together in a single ValidationError.
func NewLivraison(numero string, date time.Time, fournisseurID, produitID uuid.UUID, quantiteLivree, prixAchatUnitaire decimal.Decimal, observations string) (*Livraison, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixLivraison, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: LIV0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if fournisseurID == uuid.Nil {
		verr.Add("fournisseur", shared.FieldRequired, "Le fournisseur est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if quantiteLivree.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_livree", shared.FieldRange, "La quantité livrée doit être strictement positive")
	}
	if prixAchatUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_achat_unitaire", shared.FieldRange, "Le prix d'achat unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	l := &Livraison{
		BaseEntity:        shared.NewBaseEntity(),
		Numero:            numero,
		Date:              date,
		FournisseurID:     fournisseurID,
		ProduitID:         produitID,
		QuantiteLivree:    quantiteLivree.Round(2),
		PrixAchatUnitaire: prixAchatUnitaire.Round(2),
		Observations:      observations,
	}
	l.Recompute()
	return l, nil
}

// UpdateQuantiteEtPrix updates the raw inputs and re-derives the total
func (l *Livraison) UpdateQuantiteEtPrix(quantiteLivree, prixAchatUnitaire decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantiteLivree.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_livree", shared.FieldRange, "La quantité livrée doit être strictement positive")
	}
	if prixAchatUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_achat_unitaire", shared.FieldRange, "Le prix d'achat unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	l.QuantiteLivree = quantiteLivree.Round(2)
	l.PrixAchatUnitaire = prixAchatUnitaire.Round(2)
	l.Recompute()
	l.Touch()
	return nil
}

// Update corrects the delivery's date, raw inputs and observations, then
// re-derives the total
func (l *Livraison) Update(date time.Time, quantiteLivree, prixAchatUnitaire decimal.Decimal, observations string) error {
	verr := shared.NewValidationError()
	shared.ValidateDateNotFuture(verr, "date", date)
	if quantiteLivree.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_livree", shared.FieldRange, "La quantité livrée doit être strictement positive")
	}
	if prixAchatUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_achat_unitaire", shared.FieldRange, "Le prix d'achat unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	l.Date = date
	l.QuantiteLivree = quantiteLivree.Round(2)
	l.PrixAchatUnitaire = prixAchatUnitaire.Round(2)
	l.Observations = observations
	l.Recompute()
	l.Touch()
	return nil
}

// Recompute re-derives montant_total_achat = quantite_livree × prix_achat_unitaire
func (l *Livraison) Recompute() {
	l.MontantTotalAchat = l.QuantiteLivree.Mul(l.PrixAchatUnitaire).Round(2)
}
