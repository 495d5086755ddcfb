package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/charge"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/credit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/profit"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/report"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/supply"
)

// reporter aggregates one table over a filtered set. amountColumn is the
// monetary column summed per group. Only groups with at least one row are
// emitted; sums coalesce to zero before arithmetic.
type reporter struct {
	db           *Database
	model        any
	amountColumn string
	opts         queryOptions
}

func (r *reporter) query(ctx context.Context, filter shared.Filter) *gorm.DB {
	return applyWhere(r.db.Session(ctx).Model(r.model), filter, r.opts)
}

type dailyRow struct {
	Jour   time.Time
	Total  decimal.Decimal
	Nombre int64
}

type monthlyRow struct {
	Annee  int
	Mois   int
	Total  decimal.Decimal
	Nombre int64
}

// parJour groups the filtered set by calendar day, most recent first for
// display. Callers pass filter.Chronological() for the export ordering.
func (r *reporter) parJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	var rows []dailyRow
	order := "jour " + ValidateSortOrder(filter.OrderDir)
	if err := r.query(ctx, filter).
		Select("DATE(" + r.opts.dateColumn + ") AS jour, COALESCE(SUM(" + r.amountColumn + "), 0) AS total, COUNT(*) AS nombre").
		Group("DATE(" + r.opts.dateColumn + ")").
		Order(order).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	points := make([]report.PointJournalier, len(rows))
	for i, row := range rows {
		points[i] = report.PointJournalier{Jour: row.Jour, Total: row.Total, Nombre: row.Nombre}
	}
	return points, nil
}

// parMois groups the filtered set by calendar month
func (r *reporter) parMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	var rows []monthlyRow
	dir := ValidateSortOrder(filter.OrderDir)
	if err := r.query(ctx, filter).
		Select("EXTRACT(YEAR FROM " + r.opts.dateColumn + ")::int AS annee, EXTRACT(MONTH FROM " + r.opts.dateColumn + ")::int AS mois, COALESCE(SUM(" + r.amountColumn + "), 0) AS total, COUNT(*) AS nombre").
		Group("EXTRACT(YEAR FROM " + r.opts.dateColumn + "), EXTRACT(MONTH FROM " + r.opts.dateColumn + ")").
		Order("annee " + dir + ", mois " + dir).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	points := make([]report.PointMensuel, len(rows))
	for i, row := range rows {
		points[i] = report.PointMensuel{Annee: row.Annee, Mois: row.Mois, Total: row.Total, Nombre: row.Nombre}
	}
	return points, nil
}

// GormVenteReporter implements report.VenteReporter
type GormVenteReporter struct{ reporter }

// NewGormVenteReporter creates the sales reporter
func NewGormVenteReporter(db *Database) *GormVenteReporter {
	return &GormVenteReporter{reporter{
		db: db, model: &sales.Vente{}, amountColumn: "total_vente",
		opts: queryOptions{
			dateColumn: "date",
			sortFields: map[string]bool{"magasin_id": true, "client_id": true, "produit_id": true, "type_vente": true},
		},
	}}
}

// Resume sums the sales columns over the filtered set
func (r *GormVenteReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeVentes, error) {
	var resume report.ResumeVentes
	if err := r.query(ctx, filter).
		Select("COUNT(*) AS nb_ventes, COALESCE(SUM(total_vente), 0) AS total_ventes, COALESCE(SUM(quantite_vendue), 0) AS total_quantite").
		Scan(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// ParJour groups sales by day
func (r *GormVenteReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	return r.parJour(ctx, filter)
}

// ParMois groups sales by month
func (r *GormVenteReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	return r.parMois(ctx, filter)
}

// GormLivraisonReporter implements report.LivraisonReporter
type GormLivraisonReporter struct{ reporter }

// NewGormLivraisonReporter creates the deliveries reporter
func NewGormLivraisonReporter(db *Database) *GormLivraisonReporter {
	return &GormLivraisonReporter{reporter{
		db: db, model: &supply.Livraison{}, amountColumn: "montant_total_achat",
		opts: queryOptions{
			dateColumn: "date",
			sortFields: map[string]bool{"fournisseur_id": true, "produit_id": true},
		},
	}}
}

// Resume sums the delivery columns over the filtered set
func (r *GormLivraisonReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeLivraisons, error) {
	var resume report.ResumeLivraisons
	if err := r.query(ctx, filter).
		Select("COUNT(*) AS nb_livraisons, COALESCE(SUM(montant_total_achat), 0) AS total_achats, COALESCE(SUM(quantite_livree), 0) AS total_quantite").
		Scan(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// ParJour groups deliveries by day
func (r *GormLivraisonReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	return r.parJour(ctx, filter)
}

// ParMois groups deliveries by month
func (r *GormLivraisonReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	return r.parMois(ctx, filter)
}

// GormCreditReporter implements report.CreditReporter
type GormCreditReporter struct{ reporter }

// NewGormCreditReporter creates the customer credit reporter
func NewGormCreditReporter(db *Database) *GormCreditReporter {
	return &GormCreditReporter{reporter{
		db: db, model: &credit.CreditClient{}, amountColumn: "montant_total",
		opts: queryOptions{
			dateColumn: "date",
			sortFields: map[string]bool{"client_id": true, "magasin_id": true, "produit_id": true, "est_solde": true},
		},
	}}
}

// Resume sums the credit columns over the filtered set
func (r *GormCreditReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeCredits, error) {
	var resume report.ResumeCredits
	if err := r.query(ctx, filter).
		Select("COUNT(*) AS nb_credits, COALESCE(SUM(montant_total), 0) AS total_credit, COALESCE(SUM(montant_paye), 0) AS total_paye, COALESCE(SUM(solde_restant), 0) AS total_solde").
		Scan(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// ParJour groups credits by day
func (r *GormCreditReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	return r.parJour(ctx, filter)
}

// ParMois groups credits by month
func (r *GormCreditReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	return r.parMois(ctx, filter)
}

// GormChargeReporter implements report.ChargeReporter
type GormChargeReporter struct{ reporter }

// NewGormChargeReporter creates the operating charge reporter
func NewGormChargeReporter(db *Database) *GormChargeReporter {
	return &GormChargeReporter{reporter{
		db: db, model: &charge.Charge{}, amountColumn: "montant",
		opts: queryOptions{
			dateColumn: "date",
			sortFields: map[string]bool{"categorie_id": true, "payee": true},
		},
	}}
}

// Resume sums the charge columns over the filtered set
func (r *GormChargeReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeCharges, error) {
	var resume report.ResumeCharges
	if err := r.query(ctx, filter).
		Select("COUNT(*) AS nb_charges, COALESCE(SUM(montant), 0) AS total_charges, COALESCE(SUM(CASE WHEN payee THEN montant ELSE 0 END), 0) AS total_payees, COALESCE(SUM(CASE WHEN payee THEN 0 ELSE montant END), 0) AS total_impayees").
		Scan(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// ParJour groups charges by day
func (r *GormChargeReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	return r.parJour(ctx, filter)
}

// ParMois groups charges by month
func (r *GormChargeReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	return r.parMois(ctx, filter)
}

// GormProfitReporter implements report.ProfitReporter
type GormProfitReporter struct{ reporter }

// NewGormProfitReporter creates the profit reporter
func NewGormProfitReporter(db *Database) *GormProfitReporter {
	return &GormProfitReporter{reporter{
		db: db, model: &profit.AnalyseProfit{}, amountColumn: "profit_net",
		opts: queryOptions{
			dateColumn: "date",
			sortFields: map[string]bool{"magasin_id": true, "produit_id": true, "commercial_id": true},
		},
	}}
}

// Resume sums the profit columns over the filtered set
func (r *GormProfitReporter) Resume(ctx context.Context, filter shared.Filter) (*report.ResumeProfits, error) {
	var resume report.ResumeProfits
	if err := r.query(ctx, filter).
		Select("COUNT(*) AS nb_analyses, COALESCE(SUM(montant_achat), 0) AS montant_achat, COALESCE(SUM(montant_vente), 0) AS montant_vente, COALESCE(SUM(profit_brut), 0) AS profit_brut, COALESCE(SUM(profit_net), 0) AS profit_net").
		Scan(&resume).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// ParJour groups analyses by day
func (r *GormProfitReporter) ParJour(ctx context.Context, filter shared.Filter) ([]report.PointJournalier, error) {
	return r.parJour(ctx, filter)
}

// ParMois groups analyses by month
func (r *GormProfitReporter) ParMois(ctx context.Context, filter shared.Filter) ([]report.PointMensuel, error) {
	return r.parMois(ctx, filter)
}
