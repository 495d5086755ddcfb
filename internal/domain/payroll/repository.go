package payroll

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// EmployeRepository defines persistence operations for employees
type EmployeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employe, error)
	FindByNumero(ctx context.Context, numero string) (*Employe, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employe, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	ListNumeros(ctx context.Context, prefix string) ([]string, error)
	Save(ctx context.Context, employe *Employe) error
}

// PaieRepository defines persistence operations for pay slips
type PaieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaieSalaire, error)
	FindByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (*PaieSalaire, error)
	ExistsByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PaieSalaire, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, paie *PaieSalaire) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CongeRepository defines persistence operations for leave periods
type CongeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Conge, error)
	FindByEmploye(ctx context.Context, employeID uuid.UUID) ([]Conge, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Conge, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, conge *Conge) error
	Delete(ctx context.Context, id uuid.UUID) error
}
