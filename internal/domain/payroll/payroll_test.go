package payroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

func TestNewEmploye(t *testing.T) {
	t.Run("NormalizesAndActivates", func(t *testing.T) {
		e, err := NewEmploye("EMP-0001", " diallo ", " mamadou saliou ", "mat-7", " chauffeur ",
			"+224 620 00 00 00", "Conakry", time.Now().AddDate(-1, 0, 0),
			decimal.NewFromFloat(1500000), decimal.NewFromFloat(100000))
		require.NoError(t, err)
		assert.Equal(t, "DIALLO", e.Nom)
		assert.Equal(t, "MAMADOU SALIOU", e.Prenoms)
		assert.Equal(t, "DIALLO MAMADOU SALIOU", e.NomComplet())
		assert.True(t, e.Actif)

		e.Desactiver()
		assert.False(t, e.Actif)
		e.Reactiver()
		assert.True(t, e.Actif)
	})

	t.Run("BadTelephoneRejected", func(t *testing.T) {
		_, err := NewEmploye("EMP-0002", "Diallo", "Aissatou", "", "Caissière",
			"abc", "", time.Now().AddDate(-1, 0, 0), decimal.NewFromFloat(1000000), decimal.Zero)
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "telephone", verr.Fields[0].Field)
	})

	t.Run("NumeroFormat", func(t *testing.T) {
		_, err := NewEmploye("EMP-12", "Diallo", "Aissatou", "", "Caissière",
			"", "", time.Now().AddDate(-1, 0, 0), decimal.NewFromFloat(1000000), decimal.Zero)
		require.Error(t, err)
	})
}

func TestPaieSalaireRecompute(t *testing.T) {
	p, err := NewPaieSalaire(uuid.New(), 2025, 7,
		decimal.NewFromFloat(1500000), // base
		decimal.NewFromFloat(100000),  // prime
		decimal.NewFromFloat(10),      // heures sup
		decimal.NewFromFloat(5000),    // taux
		decimal.NewFromFloat(25000),   // autres primes
		decimal.NewFromFloat(200000),  // avances
		decimal.NewFromFloat(50000))   // retenues
	require.NoError(t, err)

	assert.Equal(t, "1675000.00", p.SalaireBrut.StringFixed(2))
	assert.Equal(t, "1425000.00", p.SalaireNet.StringFixed(2))

	// idempotent on unchanged raw fields
	p.Recompute()
	assert.Equal(t, "1675000.00", p.SalaireBrut.StringFixed(2))

	require.NoError(t, p.MarquerPayee(time.Now().AddDate(0, 0, -1)))
	assert.True(t, p.Payee)
	require.NotNil(t, p.DatePaiement)
}

func TestNewPaieSalaireValidation(t *testing.T) {
	_, err := NewPaieSalaire(uuid.Nil, 1990, 13,
		decimal.NewFromFloat(-1), decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.Zero, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	verr := err.(*shared.ValidationError)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"employe", "annee", "mois", "salaire_base"}, fields)
}

func TestNewConge(t *testing.T) {
	t.Run("CountsBothEnds", func(t *testing.T) {
		debut := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		fin := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
		c, err := NewConge(uuid.New(), CongeAnnuel, debut, fin, "congé annuel")
		require.NoError(t, err)
		assert.Equal(t, 10, c.NbJours)
		assert.False(t, c.Approuve)

		c.Approuver()
		assert.True(t, c.Approuve)
	})

	t.Run("SingleDay", func(t *testing.T) {
		day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		c, err := NewConge(uuid.New(), CongeMaladie, day, day, "")
		require.NoError(t, err)
		assert.Equal(t, 1, c.NbJours)
	})

	t.Run("EndBeforeStartRejected", func(t *testing.T) {
		debut := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
		fin := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		_, err := NewConge(uuid.New(), CongeAnnuel, debut, fin, "")
		require.Error(t, err)
		verr := err.(*shared.ValidationError)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "date_fin", verr.Fields[0].Field)
	})
}
