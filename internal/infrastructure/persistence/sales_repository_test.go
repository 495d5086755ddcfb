package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func venteDeTest(numero string, date time.Time) *sales.Vente {
	return &sales.Vente{
		BaseEntity:     shared.NewBaseEntity(),
		Numero:         numero,
		Date:           date,
		MagasinID:      uuid.New(),
		ClientID:       uuid.New(),
		ProduitID:      uuid.New(),
		QuantiteVendue: decimal.NewFromInt(10),
		TypeVente:      sales.TypeVenteCash,
		PrixUnitaire:   decimal.NewFromInt(500),
		TotalVente:     decimal.NewFromInt(5000),
	}
}

func TestGormVenteRepository_DateRange(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t, &sales.Vente{})
	repo := NewGormVenteRepository(db)

	require.NoError(t, repo.Save(ctx, venteDeTest("VTE0001", time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(ctx, venteDeTest("VTE0002", time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(ctx, venteDeTest("VTE0003", time.Date(2025, 2, 1, 0, 30, 0, 0, time.UTC))))

	// date_debut and date_fin bind as bare dates at midnight
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	filter := shared.DefaultFilter()
	filter.DateFrom = &from
	filter.DateTo = &to
	filter.OrderBy = "numero"
	filter.OrderDir = "asc"

	t.Run("a sale with a time of day on the last day stays in range", func(t *testing.T) {
		ventes, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, ventes, 2)
		assert.Equal(t, "VTE0001", ventes[0].Numero)
		assert.Equal(t, "VTE0002", ventes[1].Numero)
	})

	t.Run("the day after date_fin is excluded", func(t *testing.T) {
		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
