package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// GormCategorieRepository implements charge.CategorieRepository
type GormCategorieRepository struct {
	gormRepository[charge.CategorieCharge]
}

// NewGormCategorieRepository creates a charge category repository
func NewGormCategorieRepository(db *Database) *GormCategorieRepository {
	return &GormCategorieRepository{newGormRepository[charge.CategorieCharge](db, queryOptions{
		searchColumns: []string{"nom"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "nom": true, "type": true,
		},
		defaultSort: "nom",
	})}
}

// FindByNom finds a category by its unique name
func (r *GormCategorieRepository) FindByNom(ctx context.Context, nom string) (*charge.CategorieCharge, error) {
	return findOneBy(&r.gormRepository, ctx, "nom", nom)
}

// ExistsByNom reports whether a category carries the name
func (r *GormCategorieRepository) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "nom", nom)
}

// GormChargeRepository implements charge.ChargeRepository
type GormChargeRepository struct {
	gormRepository[charge.Charge]
}

// NewGormChargeRepository creates an operating charge repository
func NewGormChargeRepository(db *Database) *GormChargeRepository {
	return &GormChargeRepository{newGormRepository[charge.Charge](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero", "libelle", "fournisseur"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"categorie_id": true, "montant": true, "payee": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a charge by its reference number
func (r *GormChargeRepository) FindByNumero(ctx context.Context, numero string) (*charge.Charge, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a charge carries the reference number
func (r *GormChargeRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every charge numero sharing the prefix
func (r *GormChargeRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// GormBudgetRepository implements charge.BudgetRepository
type GormBudgetRepository struct {
	gormRepository[charge.BudgetAnnuel]
}

// NewGormBudgetRepository creates a yearly budget repository
func NewGormBudgetRepository(db *Database) *GormBudgetRepository {
	return &GormBudgetRepository{newGormRepository[charge.BudgetAnnuel](db, queryOptions{
		sortFields: map[string]bool{
			"id": true, "created_at": true, "annee": true, "categorie_id": true,
			"ecart": true,
		},
		defaultSort: "annee",
	})}
}

// FindByAnneeCategorie finds the budget of one category for one year
func (r *GormBudgetRepository) FindByAnneeCategorie(ctx context.Context, annee int, categorieID uuid.UUID) (*charge.BudgetAnnuel, error) {
	var entity charge.BudgetAnnuel
	if err := r.db.Session(ctx).
		Where("annee = ? AND categorie_id = ?", annee, categorieID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsByAnneeCategorie reports whether a budget exists for (annee, categorie)
func (r *GormBudgetRepository) ExistsByAnneeCategorie(ctx context.Context, annee int, categorieID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Session(ctx).Model(&charge.BudgetAnnuel{}).
		Where("annee = ? AND categorie_id = ?", annee, categorieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormPlanificationRepository implements charge.PlanificationRepository
type GormPlanificationRepository struct {
	gormRepository[charge.PlanificationCharge]
}

// NewGormPlanificationRepository creates a planned charge repository
func NewGormPlanificationRepository(db *Database) *GormPlanificationRepository {
	return &GormPlanificationRepository{newGormRepository[charge.PlanificationCharge](db, queryOptions{
		searchColumns: []string{"libelle"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "categorie_id": true,
			"prochaine_echeance": true, "active": true,
		},
		defaultSort: "prochaine_echeance",
	})}
}

// FindActives returns active planned charges ordered by next due date
func (r *GormPlanificationRepository) FindActives(ctx context.Context) ([]charge.PlanificationCharge, error) {
	var planifications []charge.PlanificationCharge
	if err := r.db.Session(ctx).
		Where("active = ?", true).
		Order("prochaine_echeance ASC").
		Find(&planifications).Error; err != nil {
		return nil, err
	}
	return planifications, nil
}
