package cash

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func TestNewMouvementCaisse(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	t.Run("Net", func(t *testing.T) {
		m, err := NewMouvementCaisse(yesterday, " vente du jour ",
			decimal.NewFromFloat(500000), decimal.NewFromFloat(120000), "")
		require.NoError(t, err)
		assert.Equal(t, "VENTE DU JOUR", m.Libelle)
		assert.Equal(t, "380000.00", m.Net().StringFixed(2))
	})

	t.Run("BothZeroRejected", func(t *testing.T) {
		_, err := NewMouvementCaisse(yesterday, "rien", decimal.Zero, decimal.Zero, "")
		require.Error(t, err)
	})

	t.Run("CollectsAllViolations", func(t *testing.T) {
		_, err := NewMouvementCaisse(time.Now().AddDate(0, 0, 2), "",
			decimal.NewFromFloat(-1), decimal.NewFromFloat(-1), "")
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"date", "libelle", "montant_entree", "montant_sortie"}, fields)
	})
}
