package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/fleet"
	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// newSQLiteDatabase opens an in-memory database so repository queries run
// against a real SQL engine instead of expectation scripts. The filter SQL
// sticks to dialect-neutral constructs, which keeps these tests honest for
// the Postgres deployment.
func newSQLiteDatabase(t *testing.T, models ...any) *Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(models...))
	return &Database{DB: gormDB}
}

func vehiculeDeTest(matricule, marque string) *fleet.Vehicule {
	return &fleet.Vehicule{
		BaseEntity:      shared.NewBaseEntity(),
		Matricule:       matricule,
		Type:            "camion",
		Marque:          marque,
		Modele:          "NPR",
		Annee:           2021,
		DateAcquisition: time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
		PrixAcquisition: decimal.NewFromInt(185000000),
		Statut:          fleet.VehiculeActif,
	}
}

func TestGormVehiculeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and reloads a vehicle", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		v := vehiculeDeTest("GN-1234-A", "Isuzu")
		require.NoError(t, repo.Save(ctx, v))

		loaded, err := repo.FindByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "GN-1234-A", loaded.Matricule)
		assert.Equal(t, fleet.VehiculeActif, loaded.Statut)
		assert.True(t, loaded.PrixAcquisition.Equal(v.PrixAcquisition))
	})

	t.Run("reports a duplicate plate number as a conflict", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-1234-A", "Isuzu")))

		err := repo.Save(ctx, vehiculeDeTest("GN-1234-A", "Toyota"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("finds by plate number", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-5678-B", "Renault")))

		found, err := repo.FindByMatricule(ctx, "GN-5678-B")
		require.NoError(t, err)
		assert.Equal(t, "Renault", found.Marque)

		_, err = repo.FindByMatricule(ctx, "GN-0000-Z")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		exists, err := repo.ExistsByMatricule(ctx, "GN-5678-B")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("filters with free-text search and sorts by plate", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-1111-A", "Isuzu")))
		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-2222-B", "Toyota")))
		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-3333-C", "Toyota")))

		filter := shared.DefaultFilter()
		filter.Search = "toyota"
		filter.OrderBy = "matricule"
		filter.OrderDir = "asc"

		vehicules, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, vehicules, 2)
		assert.Equal(t, "GN-2222-B", vehicules[0].Matricule)
		assert.Equal(t, "GN-3333-C", vehicules[1].Matricule)

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("filters on a whitelisted dimension", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		enPanne := vehiculeDeTest("GN-4444-D", "Mercedes")
		enPanne.Statut = fleet.VehiculeMaintenance
		require.NoError(t, repo.Save(ctx, enPanne))
		require.NoError(t, repo.Save(ctx, vehiculeDeTest("GN-5555-E", "Isuzu")))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"statut": string(fleet.VehiculeMaintenance)}

		vehicules, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, vehicules, 1)
		assert.Equal(t, "GN-4444-D", vehicules[0].Matricule)
	})

	t.Run("deletes and reports unknown ids", func(t *testing.T) {
		db := newSQLiteDatabase(t, &fleet.Vehicule{})
		repo := NewGormVehiculeRepository(db)

		v := vehiculeDeTest("GN-6666-F", "Isuzu")
		require.NoError(t, repo.Save(ctx, v))
		require.NoError(t, repo.Delete(ctx, v.ID))

		assert.ErrorIs(t, repo.Delete(ctx, v.ID), shared.ErrNotFound)
	})
}

func TestGormCarburantRepository_ListNumeros(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDatabase(t, &fleet.Vehicule{}, &fleet.ConsommationCarburant{})
	vehicules := NewGormVehiculeRepository(db)
	repo := NewGormCarburantRepository(db)

	v := vehiculeDeTest("GN-7777-G", "Isuzu")
	require.NoError(t, vehicules.Save(ctx, v))

	for _, numero := range []string{"CARB-2026-0001", "CARB-2026-0002", "CARB-2025-0099"} {
		c := &fleet.ConsommationCarburant{
			BaseEntity:     shared.NewBaseEntity(),
			Numero:         numero,
			VehiculeID:     v.ID,
			Date:           time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			MontantSemaine: decimal.NewFromInt(450000),
		}
		require.NoError(t, repo.Save(ctx, c))
	}

	numeros, err := repo.ListNumeros(ctx, "CARB-2026-")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CARB-2026-0001", "CARB-2026-0002"}, numeros)
}
