package wheel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{120, 120},
		{360, 0},
		{470, 110},
		{-120, 240},
		{-720, 0},
		{359.5, 359.5},
	} {
		require.Equal(t, tc.want, Normalize(tc.in), "Normalize(%v)", tc.in)
	}
}

func TestNormalizeNeverReturnsTurn(t *testing.T) {
	got := Normalize(-1e-15)
	require.GreaterOrEqual(t, got, 0.0)
	require.Less(t, got, Turn)
}

func TestRotateWraps(t *testing.T) {
	require.Equal(t, 110.0, Rotate(350, 120))
	require.Equal(t, 230.0, Rotate(350, 240))
	require.Equal(t, 230.0, Rotate(350, -120))
}

func TestDist(t *testing.T) {
	require.Equal(t, 0.0, Dist(10, 370))
	require.Equal(t, 20.0, Dist(350, 10))
	require.Equal(t, 180.0, Dist(0, 180))
	require.Equal(t, 120.0, Dist(0, 240))
}

func TestSpread(t *testing.T) {
	require.Nil(t, Spread(0))
	require.Equal(t, []float64{0, 120, 240}, Spread(3))
	require.Equal(t, []float64{0, 90, 180, 270}, Spread(4))
}
