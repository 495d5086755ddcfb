package charge

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// CategorieRepository defines persistence operations for categories
type CategorieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategorieCharge, error)
	FindByNom(ctx context.Context, nom string) (*CategorieCharge, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]CategorieCharge, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNom(ctx context.Context, nom string) (bool, error)
	Save(ctx context.Context, categorie *CategorieCharge) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChargeRepository defines persistence operations for charges
type ChargeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Charge, error)
	FindByNumero(ctx context.Context, numero string) (*Charge, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Charge, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, charge *Charge) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository defines persistence operations for yearly budgets
type BudgetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BudgetAnnuel, error)
	FindByAnneeCategorie(ctx context.Context, annee int, categorieID uuid.UUID) (*BudgetAnnuel, error)
	ExistsByAnneeCategorie(ctx context.Context, annee int, categorieID uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BudgetAnnuel, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, budget *BudgetAnnuel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanificationRepository defines persistence operations for planned charges
type PlanificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlanificationCharge, error)
	FindActives(ctx context.Context) ([]PlanificationCharge, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PlanificationCharge, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, planification *PlanificationCharge) error
	Delete(ctx context.Context, id uuid.UUID) error
}
