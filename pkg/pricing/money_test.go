package pricing_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

func TestParseMoney(t *testing.T) {
	cases := map[string]pricing.Money{
		"35.00": 3500,
		"35.5":  3550,
		"35":    3500,
		"0.05":  5,
		"-5.00": -500,
		"+1.25": 125,
		" 9.90 ": 990,
	}
	for in, want := range cases {
		got, err := pricing.ParseMoney(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseMoneyRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.", "10,00", "1e3"} {
		_, err := pricing.ParseMoney(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "67.00", pricing.Money(6700).String())
	assert.Equal(t, "0.05", pricing.Money(5).String())
	assert.Equal(t, "-5.00", pricing.Money(-500).String())
	assert.Equal(t, "0.00", pricing.Money(0).String())
}

func TestFromFloatRoundsHalfUp(t *testing.T) {
	assert.Equal(t, pricing.Money(1005), pricing.FromFloat(10.045))
	assert.Equal(t, pricing.Money(1004), pricing.FromFloat(10.044))
	// Half away from zero on the negative side.
	assert.Equal(t, pricing.Money(-1005), pricing.FromFloat(-10.045))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	type payload struct {
		Price pricing.Money `json:"price"`
	}

	out, err := json.Marshal(payload{Price: 3500})
	require.NoError(t, err)
	assert.Equal(t, `{"price":35.00}`, string(out))

	var fromNumber payload
	require.NoError(t, json.Unmarshal([]byte(`{"price":12.5}`), &fromNumber))
	assert.Equal(t, pricing.Money(1250), fromNumber.Price)

	var fromString payload
	require.NoError(t, json.Unmarshal([]byte(`{"price":"12.50"}`), &fromString))
	assert.Equal(t, pricing.Money(1250), fromString.Price)
}
