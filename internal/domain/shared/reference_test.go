package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidNumero(t *testing.T) {
	cases := []struct {
		prefix string
		numero string
		valid  bool
	}{
		{PrefixVente, "VTE0012", true},
		{PrefixVente, "VTE12", false},
		{PrefixVente, "VTE123", false},
		{PrefixVente, "VTE1234", true},
		{PrefixVente, "VTE12345", true},
		{PrefixVente, "vte0012", false},
		{PrefixVente, "VTE00A1", false},
		{PrefixCredit, "CRD0001", true},
		{PrefixMouvement, "STK0001", true},
		{PrefixEmploye, "EMP-0001", true},
		{PrefixEmploye, "EMP0001", false},
		{PrefixCarburant, "CARB0007", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, ValidNumero(c.prefix, c.numero), c.numero)
	}
}

func TestNextNumero(t *testing.T) {
	t.Run("MaxPlusOneNotFirstGap", func(t *testing.T) {
		next := NextNumero(PrefixEmploye, []string{"EMP-0001", "EMP-0003"})
		assert.Equal(t, "EMP-0004", next)
	})

	t.Run("StartsAtOne", func(t *testing.T) {
		assert.Equal(t, "CHG0001", NextNumero(PrefixCharge, nil))
	})

	t.Run("IgnoresForeignPrefixes", func(t *testing.T) {
		next := NextNumero(PrefixVente, []string{"VTE0002", "LIV0099", "garbage"})
		assert.Equal(t, "VTE0003", next)
	})

	t.Run("GrowsPastFourDigits", func(t *testing.T) {
		assert.Equal(t, "VTE10000", NextNumero(PrefixVente, []string{"VTE9999"}))
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ETS YALI", NormalizeName("  ets yali "))
	assert.Equal(t, "ELECTRICITE", NormalizeIdentifier(" électricité "))
}

func TestValidateDateNotFuture(t *testing.T) {
	t.Run("TodayAccepted", func(t *testing.T) {
		verr := NewValidationError()
		ValidateDateNotFuture(verr, "date", time.Now())
		assert.False(t, verr.HasErrors())
	})

	t.Run("TomorrowRejected", func(t *testing.T) {
		verr := NewValidationError()
		ValidateDateNotFuture(verr, "date", time.Now().AddDate(0, 0, 1))
		assert.True(t, verr.HasErrors())
		assert.Equal(t, FieldFuture, verr.Fields[0].Code)
	})

	t.Run("ZeroRequired", func(t *testing.T) {
		verr := NewValidationError()
		ValidateDateNotFuture(verr, "date", time.Time{})
		assert.True(t, verr.HasErrors())
		assert.Equal(t, FieldRequired, verr.Fields[0].Code)
	})
}
