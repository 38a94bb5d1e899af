package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

var envKeys = []string{
	"CATALOG_ENVIRONMENT",
	"CATALOG_STORAGE_NAME",
	"CATALOG_ADDR",
	"CATALOG_SERVER",
}

// clearEnv unsets every CATALOG_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileBase), []byte(content), 0o644))
}

func TestParseEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_ENVIRONMENT", "development")
	t.Setenv("CATALOG_STORAGE_NAME", "Staging")
	t.Setenv("CATALOG_ADDR", ":9000")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, "Staging", cfg.StorageName)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, DefaultServer, cfg.Server)
}

func TestParseEnv_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_ENVIRONMENT", "staging")

	_, err := ParseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestReadFile_MissingFileIsNotAnError(t *testing.T) {
	v, err := ReadFile(t.TempDir())
	require.NoError(t, err)
	assert.False(t, v.IsSet(KeyStorageName))
}

func TestReadFile_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "environment: [unterminated\n")

	_, err := ReadFile(dir)
	assert.Error(t, err)
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_STORAGE_NAME", "FromEnv")
	t.Setenv("CATALOG_ADDR", ":7000")
	dir := t.TempDir()
	writeConfig(t, dir, "environment: Development\nstorage_name: FromFile\n")

	v, err := ReadFile(dir)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, "FromFile", cfg.StorageName)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoad_ChangedFlagOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "addr: \":7000\"\nstorage_name: FromFile\n")

	v, err := ReadFile(dir)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	cmd.Flags().String(KeyAddr, DefaultAddr, "")
	cmd.Flags().String(KeyStorageName, DefaultStorageName, "")
	require.NoError(t, v.BindPFlag(KeyAddr, cmd.Flags().Lookup(KeyAddr)))
	require.NoError(t, v.BindPFlag(KeyStorageName, cmd.Flags().Lookup(KeyStorageName)))
	require.NoError(t, cmd.Flags().Set(KeyAddr, ":9999"))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "FromFile", cfg.StorageName, "unchanged flag must not shadow the file")
}

func TestLoad_NilViperUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_ENVIRONMENT", "Test")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, EnvironmentTesting, cfg.Environment)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown environment", "environment: Staging\n", ErrUnknownEnvironment},
		{"storage name with slash", "storage_name: a/b\n", types.ErrStorageNameFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			v, err := ReadFile(dir)
			require.NoError(t, err)
			_, err = Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_StorageConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, types.Config{Backend: types.BackendSQLite, StorageName: DefaultStorageName}, cfg.StorageConfig())
}

func TestWriteFileIfMissing(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, FileBase)
	cfg := Default()
	cfg.Environment = EnvironmentDevelopment

	wrote, err := WriteFileIfMissing(path, cfg)
	require.NoError(t, err)
	assert.True(t, wrote)

	v, err := ReadFile(dir)
	require.NoError(t, err)
	loaded, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	wrote, err = WriteFileIfMissing(path, Default())
	require.NoError(t, err)
	assert.False(t, wrote, "existing file must be left alone")
}
