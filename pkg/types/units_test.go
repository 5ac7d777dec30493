package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatts_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Watts
		want string
	}{
		{Watts(0), "0.00 W"},
		{Watts(0.5), "500 mW"},
		{Watts(1), "1.00 W"},
		{Watts(5), "5.00 W"},
		{Watts(999.99), "999.99 W"},
		{Watts(1000), "1.00 kW"},
		{Watts(2500), "2.50 kW"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestWatts_KW(t *testing.T) {
	assert.InDelta(t, 0.005, Watts(5).KW(), 1e-15)
	assert.InDelta(t, 1.0, Watts(1000).KW(), 1e-15)
	// must be a plain division so calculator output stays bit-identical
	assert.Equal(t, 10.0/1000, Watts(10).KW())
}

func TestKWh_Humanized(t *testing.T) {
	assert.Equal(t, "500.00 Wh", KWh(0.5).Humanized())
	assert.Equal(t, "3.00 kWh", KWh(3).Humanized())
	assert.Equal(t, "7.20 kWh", KWh(7.2).Humanized())
	assert.Equal(t, "1.50 MWh", KWh(1500).Humanized())
}
