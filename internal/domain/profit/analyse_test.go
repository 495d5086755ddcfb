package profit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func newTestAnalyse(t *testing.T, numero string) *AnalyseProfit {
	t.Helper()
	a, err := NewAnalyseProfit(numero, time.Now().AddDate(0, 0, -1),
		uuid.New(), uuid.New(), nil,
		decimal.NewFromFloat(100), decimal.NewFromFloat(500), // achat: 50000
		decimal.NewFromFloat(80), decimal.NewFromFloat(1000), // vente: 80000
		decimal.NewFromFloat(10000)) // charges
	require.NoError(t, err)
	return a
}

func TestAnalyseProfitRecompute(t *testing.T) {
	a := newTestAnalyse(t, "PRF0001")

	assert.Equal(t, "50000.00", a.MontantAchat.StringFixed(2))
	assert.Equal(t, "80000.00", a.MontantVente.StringFixed(2))
	assert.Equal(t, "30000.00", a.ProfitBrut.StringFixed(2))
	assert.Equal(t, "20000.00", a.ProfitNet.StringFixed(2))

	assert.Equal(t, "37.50", a.MargeBrute().StringFixed(2))
	assert.Equal(t, "25.00", a.MargeNette().StringFixed(2))
	assert.Equal(t, "40.00", a.Rentabilite().StringFixed(2))

	// idempotent on unchanged raw fields
	a.Recompute()
	assert.Equal(t, "20000.00", a.ProfitNet.StringFixed(2))
}

func TestAnalyseProfitZeroSides(t *testing.T) {
	a, err := NewAnalyseProfit("PRF0002", time.Now().AddDate(0, 0, -1),
		uuid.New(), uuid.New(), nil,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, a.MargeBrute().IsZero())
	assert.True(t, a.MargeNette().IsZero())
	assert.True(t, a.Rentabilite().IsZero())
}

func TestNewAnalyseProfitCollectsAllViolations(t *testing.T) {
	_, err := NewAnalyseProfit("PRF1", time.Now().AddDate(0, 0, 3),
		uuid.Nil, uuid.Nil, nil,
		decimal.NewFromFloat(-1), decimal.NewFromFloat(-1),
		decimal.NewFromFloat(-1), decimal.NewFromFloat(-1), decimal.NewFromFloat(-1))
	require.Error(t, err)
	verr := err.(*shared.ValidationError)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"numero", "date", "magasin", "produit",
		"quantite_achetee", "prix_achat_unitaire",
		"quantite_vendue", "prix_vente_unitaire", "charges_associees",
	}, fields)
}

func TestBuildRapportMensuel(t *testing.T) {
	magasinID := uuid.New()
	a1 := newTestAnalyse(t, "PRF0003")
	a2 := newTestAnalyse(t, "PRF0004")

	r, err := BuildRapportMensuel(2025, 7, magasinID, []AnalyseProfit{*a1, *a2})
	require.NoError(t, err)
	assert.Equal(t, 2, r.NbAnalyses)
	assert.Equal(t, "100000.00", r.MontantAchat.StringFixed(2))
	assert.Equal(t, "160000.00", r.MontantVente.StringFixed(2))
	assert.Equal(t, "60000.00", r.ProfitBrut.StringFixed(2))
	assert.Equal(t, "40000.00", r.ProfitNet.StringFixed(2))

	_, err = BuildRapportMensuel(2025, 13, uuid.Nil, nil)
	require.Error(t, err)
}
