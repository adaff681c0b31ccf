package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, Asc, cfg.Order)
	assert.True(t, cfg.CaseSensitive)
	assert.False(t, cfg.Natural)
	assert.Equal(t, 2, cfg.MinKeys)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rule)
		wantErr string
	}{
		{
			name:   "desc_is_valid",
			mutate: func(r *Rule) { r.Order = Desc },
		},
		{
			name:    "unknown_order",
			mutate:  func(r *Rule) { r.Order = "sideways" },
			wantErr: "invalid order",
		},
		{
			name:    "min_keys_too_small",
			mutate:  func(r *Rule) { r.MinKeys = 1 },
			wantErr: "invalid minKeys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg.Rule)
	assert.Equal(t, DefaultExtensions(), cfg.Extensions)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `order: desc
caseSensitive: false
natural: true
minKeys: 3
extensions:
  - .ts
  - .mts
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keysort.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Desc, cfg.Order)
	assert.False(t, cfg.CaseSensitive)
	assert.True(t, cfg.Natural)
	assert.Equal(t, 3, cfg.MinKeys)
	assert.Equal(t, []string{".ts", ".mts"}, cfg.Extensions)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keysort.yaml"), []byte("order: desc\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Desc, cfg.Order)
	assert.True(t, cfg.CaseSensitive)
	assert.Equal(t, 2, cfg.MinKeys)
}

func TestLoadInvalidOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keysort.yaml"), []byte("order: upwards\n"), 0o600))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "invalid order")
}
