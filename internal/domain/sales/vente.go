package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// TypeVente distinguishes cash sales from sales on customer credit
type TypeVente string

const (
	TypeVenteCash   TypeVente = "cash"
	TypeVenteCredit TypeVente = "credit"
)

// IsValid checks if the value is a known sale type
func (t TypeVente) IsValid() bool {
	return t == TypeVenteCash || t == TypeVenteCredit
}

// String returns the string representation
func (t TypeVente) String() string { return string(t) }

// Vente represents one sale of a product from a store to a client.
// total_vente is a derived field recomputed from the raw quantity and
// unit price on every write.
type Vente struct {
	shared.BaseEntity
	Numero         string `gorm:"uniqueIndex"`
	Date           time.Time
	MagasinID      uuid.UUID
	ClientID       uuid.UUID
	ProduitID      uuid.UUID
	QuantiteVendue decimal.Decimal
	TypeVente      TypeVente
	PrixUnitaire   decimal.Decimal
	TotalVente     decimal.Decimal
}

// TableName returns the database table name
func (Vente) TableName() string { return "ventes" }

// NewVente creates a new sale. Every violated field is reported together;
// the cross-check that the product is stocked in the chosen store belongs
// to the application service, which has repository access.
func NewVente(numero string, date time.Time, magasinID, clientID, produitID uuid.UUID, quantiteVendue decimal.Decimal, typeVente TypeVente, prixUnitaire decimal.Decimal) (*Vente, error) {
	numero = shared.NormalizeIdentifier(numero)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixVente, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: VTE0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if clientID == uuid.Nil {
		verr.Add("client", shared.FieldRequired, "Le client est requis")
	}
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if quantiteVendue.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_vendue", shared.FieldRange, "La quantité vendue doit être strictement positive")
	}
	if !typeVente.IsValid() {
		verr.Add("type_vente", shared.FieldFormat, "Type de vente invalide (cash ou credit)")
	}
	if prixUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_unitaire", shared.FieldRange, "Le prix unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	v := &Vente{
		BaseEntity:     shared.NewBaseEntity(),
		Numero:         numero,
		Date:           date,
		MagasinID:      magasinID,
		ClientID:       clientID,
		ProduitID:      produitID,
		QuantiteVendue: quantiteVendue.Round(2),
		TypeVente:      typeVente,
		PrixUnitaire:   prixUnitaire.Round(2),
	}
	v.Recompute()
	return v, nil
}

// UpdateQuantiteEtPrix updates the raw inputs and re-derives the total
func (v *Vente) UpdateQuantiteEtPrix(quantiteVendue, prixUnitaire decimal.Decimal) error {
	verr := shared.NewValidationError()
	if quantiteVendue.LessThanOrEqual(decimal.Zero) {
		verr.Add("quantite_vendue", shared.FieldRange, "La quantité vendue doit être strictement positive")
	}
	if prixUnitaire.LessThanOrEqual(decimal.Zero) {
		verr.Add("prix_unitaire", shared.FieldRange, "Le prix unitaire doit être strictement positif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return err
	}

	v.QuantiteVendue = quantiteVendue.Round(2)
	v.PrixUnitaire = prixUnitaire.Round(2)
	v.Recompute()
	v.Touch()
	return nil
}

// Recompute re-derives total_vente = quantite_vendue × prix_unitaire
func (v *Vente) Recompute() {
	v.TotalVente = v.QuantiteVendue.Mul(v.PrixUnitaire).Round(2)
}
