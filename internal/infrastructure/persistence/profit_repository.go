package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// GormAnalyseProfitRepository implements profit.AnalyseRepository
type GormAnalyseProfitRepository struct {
	gormRepository[profit.AnalyseProfit]
}

// NewGormAnalyseProfitRepository creates a profit analysis repository
func NewGormAnalyseProfitRepository(db *Database) *GormAnalyseProfitRepository {
	return &GormAnalyseProfitRepository{newGormRepository[profit.AnalyseProfit](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"magasin_id": true, "produit_id": true, "profit_net": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds an analysis by its reference number
func (r *GormAnalyseProfitRepository) FindByNumero(ctx context.Context, numero string) (*profit.AnalyseProfit, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether an analysis carries the reference number
func (r *GormAnalyseProfitRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every analysis numero sharing the prefix
func (r *GormAnalyseProfitRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// FindByPeriode returns the analyses of one store for one month
func (r *GormAnalyseProfitRepository) FindByPeriode(ctx context.Context, annee, mois int, magasinID uuid.UUID) ([]profit.AnalyseProfit, error) {
	var analyses []profit.AnalyseProfit
	if err := r.db.Session(ctx).
		Where("magasin_id = ?", magasinID).
		Where("EXTRACT(YEAR FROM date) = ? AND EXTRACT(MONTH FROM date) = ?", annee, mois).
		Order("date ASC").
		Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

// GormRapportProfitRepository implements profit.RapportRepository
type GormRapportProfitRepository struct {
	gormRepository[profit.RapportProfitMensuel]
}

// NewGormRapportProfitRepository creates a monthly rollup repository
func NewGormRapportProfitRepository(db *Database) *GormRapportProfitRepository {
	return &GormRapportProfitRepository{newGormRepository[profit.RapportProfitMensuel](db, queryOptions{
		sortFields: map[string]bool{
			"id": true, "created_at": true, "annee": true, "mois": true,
			"magasin_id": true, "profit_net": true,
		},
		defaultSort: "annee",
	})}
}

// FindByPeriodeMagasin finds the rollup for (annee, mois, magasin)
func (r *GormRapportProfitRepository) FindByPeriodeMagasin(ctx context.Context, annee, mois int, magasinID uuid.UUID) (*profit.RapportProfitMensuel, error) {
	var entity profit.RapportProfitMensuel
	if err := r.db.Session(ctx).
		Where("annee = ? AND mois = ? AND magasin_id = ?", annee, mois, magasinID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}
