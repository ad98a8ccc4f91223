package pricing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

func money(t *testing.T, s string) pricing.Money {
	t.Helper()
	m, err := pricing.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func TestComputeLineTotalFullConfiguration(t *testing.T) {
	// Base 35.00, Grande +10.00, Bacon 5.00×2, Borda 12.00×1, qty 1 → 67.00
	grande := &pricing.Variation{ID: "v1", Name: "Grande", Price: money(t, "10.00")}
	selections := []pricing.Selection{
		{Optional: pricing.Optional{ID: "o1", Name: "Bacon", Price: money(t, "5.00")}, Quantity: 2},
		{Optional: pricing.Optional{ID: "o2", Name: "Borda", Price: money(t, "12.00")}, Quantity: 1},
	}

	total, err := pricing.ComputeLineTotal(money(t, "35.00"), grande, selections, 1)
	require.NoError(t, err)
	assert.Equal(t, "67.00", total.String())
}

func TestComputeLineTotalNegativeVariationDiscounts(t *testing.T) {
	// Base 30.00, Pequena −5.00, qty 1 → 25.00
	pequena := &pricing.Variation{ID: "v2", Name: "Pequena", Price: money(t, "-5.00")}

	total, err := pricing.ComputeLineTotal(money(t, "30.00"), pequena, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "25.00", total.String())
}

func TestComputeLineTotalNoExtras(t *testing.T) {
	total, err := pricing.ComputeLineTotal(money(t, "12.50"), nil, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, "37.50", total.String())
}

func TestComputeLineTotalZeroImpactIdentities(t *testing.T) {
	base := money(t, "20.00")

	plain, err := pricing.ComputeLineTotal(base, nil, nil, 2)
	require.NoError(t, err)

	// A zero-priced variation never changes the total.
	free := &pricing.Variation{ID: "v0", Name: "Média", Price: 0}
	withFree, err := pricing.ComputeLineTotal(base, free, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, plain, withFree)

	// An optional at quantity zero contributes nothing and does not error.
	zeroQty := []pricing.Selection{
		{Optional: pricing.Optional{ID: "o1", Name: "Bacon", Price: money(t, "5.00")}, Quantity: 0},
	}
	withZero, err := pricing.ComputeLineTotal(base, nil, zeroQty, 2)
	require.NoError(t, err)
	assert.Equal(t, plain, withZero)
}

func TestComputeLineTotalAdditivity(t *testing.T) {
	cases := []struct {
		base      string
		variation string
		optionals []struct {
			price string
			qty   int
		}
		qty  int
		want string
	}{
		{base: "10.00", variation: "0.00", qty: 1, want: "10.00"},
		{base: "10.00", variation: "2.50", qty: 4, want: "50.00"},
		{base: "0.00", variation: "-0.00", qty: 5, want: "0.00"},
		{
			base: "9.90", variation: "1.10", qty: 2, want: "28.00",
			optionals: []struct {
				price string
				qty   int
			}{{"1.50", 2}},
		},
	}

	for _, tc := range cases {
		var v *pricing.Variation
		if tc.variation != "" {
			v = &pricing.Variation{ID: "v", Name: "size", Price: money(t, tc.variation)}
		}
		var sels []pricing.Selection
		for i, o := range tc.optionals {
			sels = append(sels, pricing.Selection{
				Optional: pricing.Optional{ID: string(rune('a' + i)), Name: "opt", Price: money(t, o.price)},
				Quantity: o.qty,
			})
		}

		total, err := pricing.ComputeLineTotal(money(t, tc.base), v, sels, tc.qty)
		require.NoError(t, err)
		assert.Equal(t, tc.want, total.String())
	}
}

func TestComputeLineTotalRejectsNegativeBase(t *testing.T) {
	_, err := pricing.ComputeLineTotal(-1, nil, nil, 1)
	require.Error(t, err)

	var perr *pricing.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidPrice, perr.Kind)
	assert.Equal(t, "base_price", perr.Field)
}

func TestComputeLineTotalRejectsNegativeQuantities(t *testing.T) {
	_, err := pricing.ComputeLineTotal(money(t, "10.00"), nil, nil, -1)
	var perr *pricing.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidQuantity, perr.Kind)

	sels := []pricing.Selection{
		{Optional: pricing.Optional{ID: "o1", Name: "Bacon", Price: money(t, "5.00")}, Quantity: -2},
	}
	_, err = pricing.ComputeLineTotal(money(t, "10.00"), nil, sels, 1)
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidQuantity, perr.Kind)
	assert.Equal(t, "optionals.o1", perr.Field)
}

func TestComputeLineTotalRejectsDuplicateOptional(t *testing.T) {
	bacon := pricing.Optional{ID: "o1", Name: "Bacon", Price: money(t, "5.00")}
	sels := []pricing.Selection{
		{Optional: bacon, Quantity: 1},
		{Optional: bacon, Quantity: 2},
	}

	_, err := pricing.ComputeLineTotal(money(t, "10.00"), nil, sels, 1)
	var perr *pricing.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindDuplicateOptional, perr.Kind)
}

func TestComputeLineTotalDoesNotClampNegativeResult(t *testing.T) {
	// A discount larger than the base is rejected at entity-save time by the
	// caller; the composer itself must report the true arithmetic result.
	huge := &pricing.Variation{ID: "v", Name: "promo", Price: money(t, "-50.00")}
	total, err := pricing.ComputeLineTotal(money(t, "30.00"), huge, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "-20.00", total.String())
}

func TestValidateOptional(t *testing.T) {
	err := pricing.ValidateOptional(pricing.Optional{ID: "o1", Name: "Bacon", Price: money(t, "-1.00")})
	var perr *pricing.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidPrice, perr.Kind)

	err = pricing.ValidateOptional(pricing.Optional{ID: "o1", Name: "   "})
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidName, perr.Kind)

	assert.NoError(t, pricing.ValidateOptional(pricing.Optional{ID: "o1", Name: "Bacon", Price: 0}))
}

func TestValidateVariation(t *testing.T) {
	// Negative deltas are the whole point of variations.
	assert.NoError(t, pricing.ValidateVariation(pricing.Variation{ID: "v1", Name: "Pequena", Price: -500}))

	err := pricing.ValidateVariation(pricing.Variation{ID: "v1", Name: ""})
	var perr *pricing.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, pricing.KindInvalidName, perr.Kind)
}
