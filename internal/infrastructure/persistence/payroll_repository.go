package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/payroll"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// GormEmployeRepository implements payroll.EmployeRepository
type GormEmployeRepository struct {
	gormRepository[payroll.Employe]
}

// NewGormEmployeRepository creates an employee repository
func NewGormEmployeRepository(db *Database) *GormEmployeRepository {
	return &GormEmployeRepository{newGormRepository[payroll.Employe](db, queryOptions{
		searchColumns: []string{"numero", "nom", "prenoms", "fonction"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "numero": true, "nom": true,
			"fonction": true, "actif": true, "date_embauche": true,
		},
		defaultSort: "nom",
	})}
}

// FindByNumero finds an employee by number
func (r *GormEmployeRepository) FindByNumero(ctx context.Context, numero string) (*payroll.Employe, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether an employee carries the number
func (r *GormEmployeRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every employee numero sharing the prefix
func (r *GormEmployeRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// GormPaieRepository implements payroll.PaieRepository
type GormPaieRepository struct {
	gormRepository[payroll.PaieSalaire]
}

// NewGormPaieRepository creates a pay slip repository
func NewGormPaieRepository(db *Database) *GormPaieRepository {
	return &GormPaieRepository{newGormRepository[payroll.PaieSalaire](db, queryOptions{
		sortFields: map[string]bool{
			"id": true, "created_at": true, "employe_id": true, "annee": true,
			"mois": true, "payee": true, "salaire_net": true,
		},
		defaultSort: "created_at",
	})}
}

// FindByPeriode finds the pay slip of one employee for one month
func (r *GormPaieRepository) FindByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (*payroll.PaieSalaire, error) {
	var entity payroll.PaieSalaire
	if err := r.db.Session(ctx).
		Where("employe_id = ? AND annee = ? AND mois = ?", employeID, annee, mois).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsByPeriode reports whether a slip exists for (employe, annee, mois)
func (r *GormPaieRepository) ExistsByPeriode(ctx context.Context, employeID uuid.UUID, annee, mois int) (bool, error) {
	var count int64
	if err := r.db.Session(ctx).Model(&payroll.PaieSalaire{}).
		Where("employe_id = ? AND annee = ? AND mois = ?", employeID, annee, mois).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormCongeRepository implements payroll.CongeRepository
type GormCongeRepository struct {
	gormRepository[payroll.Conge]
}

// NewGormCongeRepository creates a leave repository
func NewGormCongeRepository(db *Database) *GormCongeRepository {
	return &GormCongeRepository{newGormRepository[payroll.Conge](db, queryOptions{
		dateColumn:    "date_debut",
		searchColumns: []string{"motif"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "employe_id": true, "type": true,
			"date_debut": true, "approuve": true,
		},
		defaultSort: "date_debut",
	})}
}

// FindByEmploye returns the leave periods of one employee, newest first
func (r *GormCongeRepository) FindByEmploye(ctx context.Context, employeID uuid.UUID) ([]payroll.Conge, error) {
	var conges []payroll.Conge
	if err := r.db.Session(ctx).
		Where("employe_id = ?", employeID).
		Order("date_debut DESC").
		Find(&conges).Error; err != nil {
		return nil, err
	}
	return conges, nil
}
