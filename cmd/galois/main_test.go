package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/config"
	"github.com/katalvlaran/galois/cyclotomic"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&app{logger: zap.NewNop()})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestGroupCmd_Text(t *testing.T) {
	out, err := execute(t, "group", "15", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "C2 x C4")
	assert.Contains(t, out, "C6")
	assert.NotContains(t, out, "Subgroup lattice")
	assert.NotContains(t, out, "Cycle graph")
}

func TestLatticeCmd_YAML(t *testing.T) {
	out, err := execute(t, "lattice", "8", "--format", "yaml")
	require.NoError(t, err)

	var s cyclotomic.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, 8, s.Modulus)
	require.NotNil(t, s.Lattice)
	assert.Equal(t, 5, s.Lattice.Count)
	assert.Nil(t, s.CycleGraph)
}

func TestCyclesCmd_Text(t *testing.T) {
	out, err := execute(t, "cycles", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "4 nodes, 4 edges")
	assert.Contains(t, out, "⟨2⟩ [1 2 4 3]")
}

func TestReportCmd_YAMLList(t *testing.T) {
	out, err := execute(t, "report", "5", "8", "1", "-f", "yaml", "--concurrency", "2")
	require.NoError(t, err)

	var ss []cyclotomic.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &ss))
	require.Len(t, ss, 3)
	assert.Equal(t, []int{5, 8, 1}, []int{ss[0].Modulus, ss[1].Modulus, ss[2].Modulus})
	assert.Equal(t, 1, ss[2].CycleGraph.Nodes)
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "group", "x")
	assert.ErrorContains(t, err, `parse modulus "x"`)

	_, err = execute(t, "group", "0")
	assert.ErrorIs(t, err, cyclotomic.ErrInvalidInput)

	_, err = execute(t, "report", "200", "--max-modulus", "100")
	assert.ErrorIs(t, err, cyclotomic.ErrTooLarge)

	_, err = execute(t, "group", "5", "--format", "json")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "lattice", "5", "7")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galois.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0o600))

	out, err := execute(t, "group", "12", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "structure: C2 x C2")

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultYAML, out)
}
