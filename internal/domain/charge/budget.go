package charge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// BudgetAnnuel is the yearly budget of one charge category, unique per
// (annee, categorie). ecart is derived from the planned and realized
// amounts on every write.
type BudgetAnnuel struct {
	shared.BaseEntity
	Annee         int       `gorm:"uniqueIndex:idx_budget_annee_categorie"`
	CategorieID   uuid.UUID `gorm:"uniqueIndex:idx_budget_annee_categorie"`
	BudgetPrevu   decimal.Decimal
	BudgetRealise decimal.Decimal
	Ecart         decimal.Decimal
}

// TableName returns the database table name
func (BudgetAnnuel) TableName() string { return "budgets_annuels" }

// NewBudgetAnnuel creates the yearly budget of a category
func NewBudgetAnnuel(annee int, categorieID uuid.UUID, budgetPrevu decimal.Decimal) (*BudgetAnnuel, error) {
	verr := shared.NewValidationError()
	if annee < 2000 || annee > time.Now().Year()+5 {
		verr.Add("annee", shared.FieldRange, "Année invalide")
	}
	if categorieID == uuid.Nil {
		verr.Add("categorie", shared.FieldRequired, "La catégorie est requise")
	}
	if budgetPrevu.IsNegative() {
		verr.Add("budget_prevu", shared.FieldRange, "Le budget prévu ne peut pas être négatif")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	b := &BudgetAnnuel{
		BaseEntity:    shared.NewBaseEntity(),
		Annee:         annee,
		CategorieID:   categorieID,
		BudgetPrevu:   budgetPrevu.Round(2),
		BudgetRealise: decimal.Zero,
	}
	b.Recompute()
	return b, nil
}

// AjouterRealise accumulates a realized expense into the budget
func (b *BudgetAnnuel) AjouterRealise(montant decimal.Decimal) error {
	if montant.IsNegative() {
		verr := shared.NewValidationError()
		verr.Add("montant", shared.FieldRange, "Le montant ne peut pas être négatif")
		return verr
	}
	b.BudgetRealise = b.BudgetRealise.Add(montant).Round(2)
	b.Recompute()
	b.Touch()
	return nil
}

// Recompute re-derives ecart = realise − prevu
func (b *BudgetAnnuel) Recompute() {
	b.Ecart = b.BudgetRealise.Sub(b.BudgetPrevu).Round(2)
}

// TauxRealisation returns realise / prevu as a percentage, zero when no
// budget was planned
func (b *BudgetAnnuel) TauxRealisation() decimal.Decimal {
	if b.BudgetPrevu.IsZero() {
		return decimal.Zero
	}
	return b.BudgetRealise.Div(b.BudgetPrevu).Mul(decimal.NewFromInt(100)).Round(2)
}
