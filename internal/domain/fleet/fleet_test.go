package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func TestNewVehicule(t *testing.T) {
	v, err := NewVehicule(" rc-1234-a ", "camion", " toyota ", "dyna", 2019,
		time.Now().AddDate(-2, 0, 0), decimal.NewFromFloat(85000000))
	require.NoError(t, err)
	assert.Equal(t, "RC-1234-A", v.Matricule)
	assert.Equal(t, "TOYOTA", v.Marque)
	assert.Equal(t, VehiculeActif, v.Statut)

	require.NoError(t, v.ChangerStatut(VehiculeMaintenance))
	assert.Equal(t, VehiculeMaintenance, v.Statut)
	require.Error(t, v.ChangerStatut(StatutVehicule("en_panne")))
}

func TestNewConsommationCarburant(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	t.Run("DerivesWeeklyAndMonthlyAmounts", func(t *testing.T) {
		c, err := NewConsommationCarburant("CARB0001", yesterday, uuid.New(),
			decimal.NewFromFloat(60), decimal.NewFromFloat(12500), "")
		require.NoError(t, err)
		assert.Equal(t, "750000.00", c.MontantSemaine.StringFixed(2))
		assert.Equal(t, "3000000.00", c.MontantMois.StringFixed(2))
	})

	t.Run("UpdateRecomputes", func(t *testing.T) {
		c, err := NewConsommationCarburant("CARB0002", yesterday, uuid.New(),
			decimal.NewFromFloat(10), decimal.NewFromFloat(100), "")
		require.NoError(t, err)
		require.NoError(t, c.UpdateConsommation(decimal.NewFromFloat(20), decimal.NewFromFloat(100)))
		assert.Equal(t, "2000.00", c.MontantSemaine.StringFixed(2))
		assert.Equal(t, "8000.00", c.MontantMois.StringFixed(2))
	})

	t.Run("CollectsAllViolations", func(t *testing.T) {
		_, err := NewConsommationCarburant("CARB1", time.Now().AddDate(0, 0, 2), uuid.Nil,
			decimal.Zero, decimal.Zero, "")
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{
			"numero", "date", "vehicule", "quantite_semaine", "prix_par_litre",
		}, fields)
	})
}

func TestNewMaintenanceVehicule(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)

	t.Run("Valid", func(t *testing.T) {
		next := time.Now().AddDate(0, 3, 0)
		m, err := NewMaintenanceVehicule(uuid.New(), yesterday, MaintenanceVidange,
			"vidange complète", decimal.NewFromFloat(450000), " garage central ", &next)
		require.NoError(t, err)
		assert.Equal(t, "GARAGE CENTRAL", m.Garage)
	})

	t.Run("NextServiceBeforeDateRejected", func(t *testing.T) {
		before := yesterday.AddDate(0, 0, -7)
		_, err := NewMaintenanceVehicule(uuid.New(), yesterday, MaintenanceReparation,
			"", decimal.NewFromFloat(100), "", &before)
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "prochaine_maintenance", verr.Fields[0].Field)
	})
}
