package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	seedFlag, ruleFlag, sortFlag, formatFlag, countFlag = "", "", "", "", 1
	for _, k := range []string{"HARMONY_SEED", "HARMONY_RULE", "HARMONY_SORT", "HARMONY_RANDOM_SEED", "HARMONY_FORMAT"} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootTriad(t *testing.T) {
	out, err := execute(t, "--seed", "#ff0000")
	require.NoError(t, err)
	require.Equal(t, "triad from #ff0000\n"+
		"  #ff0000  h=  0.0 s=100.0 b=100.0\n"+
		"  #00ff00  h=120.0 s=100.0 b=100.0\n"+
		"  #0000ff  h=240.0 s=100.0 b=100.0\n", out)
}

func TestRootRejectsBadInput(t *testing.T) {
	_, err := execute(t, "--seed", "#ff0000", "--sort", "alpha")
	require.ErrorContains(t, err, "unsupported channel")

	_, err = execute(t, "--rule", "pentadic")
	require.ErrorContains(t, err, "unknown harmony rule")
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	require.Contains(t, out, "triad")
	require.Contains(t, out, "tetradic")
}
