package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func TestNewVente(t *testing.T) {
	magasinID := uuid.New()
	clientID := uuid.New()
	produitID := uuid.New()
	yesterday := time.Now().AddDate(0, 0, -1)

	t.Run("DerivesTotal", func(t *testing.T) {
		v, err := NewVente("VTE0001", yesterday, magasinID, clientID, produitID,
			decimal.NewFromFloat(3), TypeVenteCash, decimal.NewFromFloat(1500))
		require.NoError(t, err)
		assert.Equal(t, "4500", v.TotalVente.String())
		assert.Equal(t, TypeVenteCash, v.TypeVente)
	})

	t.Run("NumeroTooShortRejected", func(t *testing.T) {
		_, err := NewVente("VTE12", yesterday, magasinID, clientID, produitID,
			decimal.NewFromFloat(1), TypeVenteCash, decimal.NewFromFloat(100))
		require.Error(t, err)
		verr, ok := err.(*shared.ValidationError)
		require.True(t, ok)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "numero", verr.Fields[0].Field)
		assert.Equal(t, shared.FieldFormat, verr.Fields[0].Code)
	})

	t.Run("NumeroFourDigitsAccepted", func(t *testing.T) {
		v, err := NewVente("VTE0012", yesterday, magasinID, clientID, produitID,
			decimal.NewFromFloat(1), TypeVenteCredit, decimal.NewFromFloat(100))
		require.NoError(t, err)
		assert.Equal(t, "VTE0012", v.Numero)
	})

	t.Run("NumeroNormalized", func(t *testing.T) {
		v, err := NewVente("  vte0042 ", yesterday, magasinID, clientID, produitID,
			decimal.NewFromFloat(1), TypeVenteCash, decimal.NewFromFloat(100))
		require.NoError(t, err)
		assert.Equal(t, "VTE0042", v.Numero)
	})

	t.Run("UnknownTypeRejected", func(t *testing.T) {
		_, err := NewVente("VTE0002", yesterday, magasinID, clientID, produitID,
			decimal.NewFromFloat(1), TypeVente("acompte"), decimal.NewFromFloat(100))
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "type_vente", verr.Fields[0].Field)
	})

	t.Run("CollectsAllViolations", func(t *testing.T) {
		_, err := NewVente("BAD", time.Now().AddDate(0, 0, 2), uuid.Nil, uuid.Nil, uuid.Nil,
			decimal.Zero, TypeVente(""), decimal.NewFromFloat(-5))
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{
			"numero", "date", "magasin", "client", "produit",
			"quantite_vendue", "type_vente", "prix_unitaire",
		}, fields)
	})
}

func TestVenteUpdateQuantiteEtPrix(t *testing.T) {
	v, err := NewVente("VTE0100", time.Now().AddDate(0, 0, -3), uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromFloat(2), TypeVenteCash, decimal.NewFromFloat(250))
	require.NoError(t, err)
	require.Equal(t, "500", v.TotalVente.String())

	require.NoError(t, v.UpdateQuantiteEtPrix(decimal.NewFromFloat(4), decimal.NewFromFloat(125.5)))
	assert.Equal(t, "502", v.TotalVente.String())

	err = v.UpdateQuantiteEtPrix(decimal.Zero, decimal.NewFromFloat(-1))
	require.Error(t, err)
	verr := err.(*shared.ValidationError)
	assert.Len(t, verr.Fields, 2)
}
