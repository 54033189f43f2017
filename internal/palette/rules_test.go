package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	seed := MustHSB(350, 60, 70)
	for _, tc := range []struct {
		rule Rule
		hues []float64
	}{
		{Triad{}, []float64{350, 110, 230}},
		{Complementary{}, []float64{350, 170}},
		{Analogous{}, []float64{350, 20, 320}},
		{Analogous{Spread: 15}, []float64{350, 5, 335}},
		{SplitComplementary{}, []float64{350, 140, 200}},
		{Tetradic{}, []float64{350, 80, 170, 260}},
	} {
		t.Run(tc.rule.Name(), func(t *testing.T) {
			got := tc.rule.Derive(seed)
			require.Len(t, got, tc.rule.Size())
			require.Equal(t, tc.hues, got.Values(Hue))
			require.Equal(t, seed, got[0])
			for _, c := range got {
				require.Equal(t, seed.Saturation(), c.Saturation())
				require.Equal(t, seed.Brightness(), c.Brightness())
			}
		})
	}
}

func TestLookup(t *testing.T) {
	require.Equal(t, []string{"analogous", "complementary", "split-complementary", "tetradic", "triad"}, Names())
	for _, name := range Names() {
		r, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, r.Name())
	}

	r, err := Lookup(" Triad")
	require.NoError(t, err)
	require.Equal(t, Triad{}, r)

	_, err = Lookup("pentadic")
	var ure *UnknownRuleError
	require.True(t, errors.As(err, &ure))
	require.Equal(t, "pentadic", ure.Name)
}
