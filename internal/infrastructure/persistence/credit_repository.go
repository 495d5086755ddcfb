package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
)

// GormCreditRepository implements credit.CreditRepository
type GormCreditRepository struct {
	gormRepository[credit.CreditClient]
}

// NewGormCreditRepository creates a customer credit repository
func NewGormCreditRepository(db *Database) *GormCreditRepository {
	return &GormCreditRepository{newGormRepository[credit.CreditClient](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"numero"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "numero": true,
			"client_id": true, "magasin_id": true, "produit_id": true,
			"est_solde": true, "solde_restant": true, "montant_total": true,
		},
		defaultSort: "date",
	})}
}

// FindByNumero finds a credit by its reference number
func (r *GormCreditRepository) FindByNumero(ctx context.Context, numero string) (*credit.CreditClient, error) {
	return findOneBy(&r.gormRepository, ctx, "numero", numero)
}

// ExistsByNumero reports whether a credit carries the reference number
func (r *GormCreditRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	return existsBy(&r.gormRepository, ctx, "numero", numero)
}

// ListNumeros returns every credit numero sharing the prefix
func (r *GormCreditRepository) ListNumeros(ctx context.Context, prefix string) ([]string, error) {
	return listNumeros(&r.gormRepository, ctx, prefix)
}

// GormPaiementRepository implements credit.PaiementRepository
type GormPaiementRepository struct {
	gormRepository[credit.Paiement]
}

// NewGormPaiementRepository creates a payment repository
func NewGormPaiementRepository(db *Database) *GormPaiementRepository {
	return &GormPaiementRepository{newGormRepository[credit.Paiement](db, queryOptions{
		dateColumn:    "date",
		searchColumns: []string{"reference"},
		sortFields: map[string]bool{
			"id": true, "created_at": true, "date": true, "credit_id": true, "montant": true,
		},
		defaultSort: "date",
	})}
}

// FindByCredit returns the payments of one credit, oldest first
func (r *GormPaiementRepository) FindByCredit(ctx context.Context, creditID uuid.UUID) ([]credit.Paiement, error) {
	var paiements []credit.Paiement
	if err := r.db.Session(ctx).
		Where("credit_id = ?", creditID).
		Order("date ASC").
		Find(&paiements).Error; err != nil {
		return nil, err
	}
	return paiements, nil
}

// SumByCredit returns the sum of the credit's payment amounts, zero when
// it has none
func (r *GormPaiementRepository) SumByCredit(ctx context.Context, creditID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Session(ctx).Model(&credit.Paiement{}).
		Where("credit_id = ?", creditID).
		Select("COALESCE(SUM(montant), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
