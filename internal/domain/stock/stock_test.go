package stock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func TestNewMouvementStock(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	t.Run("DerivesStockFinal", func(t *testing.T) {
		m, err := NewMouvementStock("STK0001", yesterday, uuid.New(), uuid.New(), nil,
			decimal.NewFromFloat(50), decimal.NewFromFloat(12), decimal.NewFromFloat(60000))
		require.NoError(t, err)
		assert.Equal(t, "38.00", m.StockFinal.StringFixed(2))
		assert.False(t, m.EnRupture())
		assert.False(t, m.EnAlerte())
	})

	t.Run("NegativeFinalAllowed", func(t *testing.T) {
		m, err := NewMouvementStock("STK0002", yesterday, uuid.New(), uuid.New(), nil,
			decimal.NewFromFloat(3), decimal.NewFromFloat(5), decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "-2.00", m.StockFinal.StringFixed(2))
		assert.True(t, m.EnRupture())
		assert.True(t, m.EnAlerte())
	})

	t.Run("AlerteBelowTen", func(t *testing.T) {
		m, err := NewMouvementStock("STK0003", yesterday, uuid.New(), uuid.New(), nil,
			decimal.NewFromFloat(20), decimal.NewFromFloat(13), decimal.Zero)
		require.NoError(t, err)
		assert.False(t, m.EnRupture())
		assert.True(t, m.EnAlerte())
	})

	t.Run("CollectsAllViolations", func(t *testing.T) {
		_, err := NewMouvementStock("STK12", time.Now().AddDate(0, 0, 2), uuid.Nil, uuid.Nil, nil,
			decimal.NewFromFloat(-1), decimal.NewFromFloat(-1), decimal.NewFromFloat(-1))
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{
			"numero", "date", "magasin", "produit",
			"stock_initial", "stock_vendu", "montant_ventes",
		}, fields)
	})
}

func TestStockActuel(t *testing.T) {
	t.Run("DerivesValeurStock", func(t *testing.T) {
		s, err := NewStockActuel(uuid.New(), uuid.New(),
			decimal.NewFromFloat(40), decimal.NewFromFloat(15), decimal.NewFromFloat(2500))
		require.NoError(t, err)
		assert.Equal(t, "100000.00", s.ValeurStock.StringFixed(2))
		assert.False(t, s.EnRupture())
		assert.False(t, s.EnAlerte())
	})

	t.Run("DefaultSeuilAlerte", func(t *testing.T) {
		s, err := NewStockActuel(uuid.New(), uuid.New(),
			decimal.NewFromFloat(8), decimal.Zero, decimal.NewFromFloat(100))
		require.NoError(t, err)
		assert.Equal(t, "10.00", s.SeuilAlerte.StringFixed(2))
		assert.True(t, s.EnAlerte())
		assert.False(t, s.EnRupture())
	})

	t.Run("AjusterRecomputes", func(t *testing.T) {
		s, err := NewStockActuel(uuid.New(), uuid.New(),
			decimal.NewFromFloat(40), decimal.NewFromFloat(10), decimal.NewFromFloat(2500))
		require.NoError(t, err)
		require.NoError(t, s.Ajuster(decimal.Zero, decimal.NewFromFloat(2600)))
		assert.Equal(t, "0.00", s.ValeurStock.StringFixed(2))
		assert.True(t, s.EnRupture())
	})
}

func TestInventaire(t *testing.T) {
	inv, err := NewInventaire("INV0001", time.Now().AddDate(0, 0, -1), uuid.New(), "  Mamadou Diallo ")
	require.NoError(t, err)
	assert.Equal(t, "MAMADOU DIALLO", inv.Responsable)
	assert.Equal(t, InventaireEnCours, inv.Statut)

	produitID := uuid.New()
	ligne, err := inv.AjouterLigne(produitID, decimal.NewFromFloat(30), decimal.NewFromFloat(27))
	require.NoError(t, err)
	assert.Equal(t, "-3.00", ligne.Ecart.StringFixed(2))

	_, err = inv.AjouterLigne(produitID, decimal.NewFromFloat(30), decimal.NewFromFloat(30))
	require.Error(t, err)
	verr := err.(*shared.ValidationError)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, shared.FieldDuplicate, verr.Fields[0].Code)

	require.Error(t, inv.Valider())
	require.NoError(t, inv.Terminer())
	require.NoError(t, inv.Valider())
	assert.Equal(t, InventaireValide, inv.Statut)
}
