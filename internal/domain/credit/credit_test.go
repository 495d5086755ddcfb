package credit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func newTestCredit(t *testing.T, quantite, prix float64) *CreditClient {
	t.Helper()
	c, err := NewCreditClient("CRD0001", time.Now().AddDate(0, 0, -1),
		uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromFloat(quantite), decimal.NewFromFloat(prix))
	require.NoError(t, err)
	return c
}

func TestCreditClientBalanceLifecycle(t *testing.T) {
	// total 10000, payments 3000 + 2000, then a final 5000
	c := newTestCredit(t, 10, 1000)
	require.Equal(t, "10000.00", c.MontantTotal.StringFixed(2))
	assert.Equal(t, "10000.00", c.SoldeRestant.StringFixed(2))
	assert.False(t, c.EstSolde)

	c.ApplyMontantPaye(decimal.NewFromFloat(3000).Add(decimal.NewFromFloat(2000)))
	assert.Equal(t, "5000.00", c.MontantPaye.StringFixed(2))
	assert.Equal(t, "5000.00", c.SoldeRestant.StringFixed(2))
	assert.False(t, c.EstSolde)

	c.ApplyMontantPaye(decimal.NewFromFloat(10000))
	assert.Equal(t, "0.00", c.SoldeRestant.StringFixed(2))
	assert.True(t, c.EstSolde)
}

func TestCreditClientRecomputeIdempotent(t *testing.T) {
	c := newTestCredit(t, 3, 333.33)
	first := c.MontantTotal
	c.Recompute()
	c.Recompute()
	assert.True(t, first.Equal(c.MontantTotal))
	assert.Equal(t, "999.99", c.MontantTotal.StringFixed(2))
}

func TestCreditClientTauxRecouvrement(t *testing.T) {
	c := newTestCredit(t, 10, 1000)
	assert.True(t, c.TauxRecouvrement().IsZero())

	c.ApplyMontantPaye(decimal.NewFromFloat(2500))
	assert.Equal(t, "25.00", c.TauxRecouvrement().StringFixed(2))

	c.ApplyMontantPaye(decimal.NewFromFloat(10000))
	assert.Equal(t, "100.00", c.TauxRecouvrement().StringFixed(2))
}

func TestNewCreditClientCollectsAllViolations(t *testing.T) {
	_, err := NewCreditClient("CRD12", time.Now().AddDate(0, 0, 3),
		uuid.Nil, uuid.Nil, uuid.Nil, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	verr, ok := err.(*shared.ValidationError)
	require.True(t, ok)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"numero", "date", "client", "magasin", "produit", "quantite", "prix_unitaire",
	}, fields)
}

func TestNewPaiement(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewPaiement(uuid.New(), time.Now().AddDate(0, 0, -1),
			decimal.NewFromFloat(3000), ModeEspeces, "recu-17")
		require.NoError(t, err)
		assert.Equal(t, "3000.00", p.Montant.StringFixed(2))
		assert.Equal(t, "RECU-17", p.Reference)
	})

	t.Run("RejectsBadModeAndAmount", func(t *testing.T) {
		_, err := NewPaiement(uuid.New(), time.Now().AddDate(0, 0, -1),
			decimal.Zero, ModePaiement("carte"), "")
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		assert.Len(t, verr.Fields, 2)
	})
}
