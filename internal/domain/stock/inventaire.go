package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// StatutInventaire is the lifecycle status of a physical inventory
type StatutInventaire string

const (
	InventaireEnCours StatutInventaire = "en_cours"
	InventaireTermine StatutInventaire = "termine"
	InventaireValide  StatutInventaire = "valide"
)

// IsValid checks if the value is a known inventory status
func (s StatutInventaire) IsValid() bool {
	switch s {
	case InventaireEnCours, InventaireTermine, InventaireValide:
		return true
	}
	return false
}

// Inventaire is a physical stock count of one store
type Inventaire struct {
	shared.BaseEntity
	Numero      string `gorm:"uniqueIndex"`
	Date        time.Time
	MagasinID   uuid.UUID
	Responsable string
	Statut      StatutInventaire
	Lignes      []LigneInventaire `gorm:"foreignKey:InventaireID"`
}

// TableName returns the database table name
func (Inventaire) TableName() string { return "inventaires" }

// LigneInventaire compares the physical count of one product against the
// theoretical stock, unique per (inventaire, produit)
type LigneInventaire struct {
	shared.BaseEntity
	InventaireID   uuid.UUID `gorm:"uniqueIndex:idx_ligne_inventaire_produit"`
	ProduitID      uuid.UUID `gorm:"uniqueIndex:idx_ligne_inventaire_produit"`
	StockTheorique decimal.Decimal
	StockPhysique  decimal.Decimal
	Ecart          decimal.Decimal
}

// TableName returns the database table name
func (LigneInventaire) TableName() string { return "lignes_inventaire" }

// NewInventaire starts a new inventory in the en_cours status
func NewInventaire(numero string, date time.Time, magasinID uuid.UUID, responsable string) (*Inventaire, error) {
	numero = shared.NormalizeIdentifier(numero)
	responsable = shared.NormalizeName(responsable)

	verr := shared.NewValidationError()
	if !shared.ValidNumero(shared.PrefixInventaire, numero) {
		verr.Add("numero", shared.FieldFormat, "Numéro invalide. Format attendu: INV0001")
	}
	shared.ValidateDateNotFuture(verr, "date", date)
	if magasinID == uuid.Nil {
		verr.Add("magasin", shared.FieldRequired, "Le magasin est requis")
	}
	if responsable == "" {
		verr.Add("responsable", shared.FieldRequired, "Le responsable est requis")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	return &Inventaire{
		BaseEntity:  shared.NewBaseEntity(),
		Numero:      numero,
		Date:        date,
		MagasinID:   magasinID,
		Responsable: responsable,
		Statut:      InventaireEnCours,
	}, nil
}

// AjouterLigne records the count of one product. Counting the same
// product twice is rejected.
func (i *Inventaire) AjouterLigne(produitID uuid.UUID, stockTheorique, stockPhysique decimal.Decimal) (*LigneInventaire, error) {
	verr := shared.NewValidationError()
	if produitID == uuid.Nil {
		verr.Add("produit", shared.FieldRequired, "Le produit est requis")
	}
	if stockTheorique.IsNegative() {
		verr.Add("stock_theorique", shared.FieldRange, "Le stock théorique ne peut pas être négatif")
	}
	if stockPhysique.IsNegative() {
		verr.Add("stock_physique", shared.FieldRange, "Le stock physique ne peut pas être négatif")
	}
	for _, l := range i.Lignes {
		if l.ProduitID == produitID {
			verr.Add("produit", shared.FieldDuplicate, "Ce produit est déjà compté dans cet inventaire")
			break
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	ligne := LigneInventaire{
		BaseEntity:     shared.NewBaseEntity(),
		InventaireID:   i.ID,
		ProduitID:      produitID,
		StockTheorique: stockTheorique.Round(2),
		StockPhysique:  stockPhysique.Round(2),
	}
	ligne.Recompute()
	i.Lignes = append(i.Lignes, ligne)
	i.Touch()
	return &i.Lignes[len(i.Lignes)-1], nil
}

// Recompute re-derives ecart = stock physique − stock théorique
func (l *LigneInventaire) Recompute() {
	l.Ecart = l.StockPhysique.Sub(l.StockTheorique).Round(2)
}

// Terminer moves an in-progress inventory to termine
func (i *Inventaire) Terminer() error {
	if i.Statut != InventaireEnCours {
		return shared.NewDomainError("INVENTAIRE_STATUT", "seul un inventaire en cours peut être terminé")
	}
	i.Statut = InventaireTermine
	i.Touch()
	return nil
}

// Valider moves a finished inventory to valide
func (i *Inventaire) Valider() error {
	if i.Statut != InventaireTermine {
		return shared.NewDomainError("INVENTAIRE_STATUT", "seul un inventaire terminé peut être validé")
	}
	i.Statut = InventaireValide
	i.Touch()
	return nil
}
