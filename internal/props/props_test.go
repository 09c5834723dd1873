package props

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/configsnap/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PrefixesAndSortsKeys(t *testing.T) {
	table, err := Parse("RootNamespace=Demo\n# comment\nPodNetEnableAnalyzerConfigSnapshot=true\nEmpty=\n")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"build_property.Empty",
		"build_property.PodNetEnableAnalyzerConfigSnapshot",
		"build_property.RootNamespace",
	}, table.Keys())

	v, ok := table.Lookup("build_property.Empty")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, "", *v)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.env")
	require.NoError(t, os.WriteFile(path, []byte(`TargetFramework="net8.0"`), 0o644))

	table, err := Read(path)
	require.NoError(t, err)
	v, _ := table.Lookup("build_property.TargetFramework")
	assert.Equal(t, "net8.0", *v)

	_, err = Read(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "failed to read properties file")
}

func TestApply_OverridesInPlace(t *testing.T) {
	m := &config.Model{GlobalOptions: config.NewTable(
		config.Entry{Key: "build_property.RootNamespace", Value: config.String("Old")},
		config.Entry{Key: "other", Value: nil},
	)}
	table, err := Parse("RootNamespace=New\nExtra=1")
	require.NoError(t, err)

	Apply(m, table)

	assert.Equal(t, []string{"build_property.RootNamespace", "other", "build_property.Extra"}, m.GlobalOptions.Keys())
	v, _ := m.GlobalOptions.Lookup("build_property.RootNamespace")
	assert.Equal(t, "New", *v)
}
