package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/infrastructure/repositories/memory"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"stores": [215, 211], "country": "us", "language": "en"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{215, 211}, cfg.Stores)
	assert.Equal(t, "us", cfg.Country)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.GetHTTPTimeout())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "stores: [101]\ncountry: de\nlanguage: de\nhttp_timeout: 5s\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{101}, cfg.Stores)
	assert.Equal(t, "de", cfg.Country)
	assert.Equal(t, 5*time.Second, cfg.GetHTTPTimeout())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"stores": [215`))
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("no stores", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"stores": [], "country": "us", "language": "en"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one store")
	})

	t.Run("bad country", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"stores": [1], "country": "usa", "language": "en"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2-letter")
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"stores": [1], "country": "us", "language": "en", "httpTimeout": "soon"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid http timeout")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.json", `{"stores": [215], "country": "us", "language": "en"}`)

	t.Run("stores and locale", func(t *testing.T) {
		t.Setenv("STOCKCHECK_STORES", "101, 102")
		t.Setenv("STOCKCHECK_COUNTRY", "de")
		t.Setenv("STOCKCHECK_LANGUAGE", "de")
		t.Setenv("STOCKCHECK_BASE_URL", "http://localhost:8080")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []int{101, 102}, cfg.Stores)
		assert.Equal(t, "de", cfg.Country)
		assert.Equal(t, "de", cfg.Language)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("STOCKCHECK_HTTP_TIMEOUT", "0s")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), cfg.GetHTTPTimeout())
	})

	t.Run("invalid store list", func(t *testing.T) {
		t.Setenv("STOCKCHECK_STORES", "215,abc")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STOCKCHECK_STORES")
	})
}

func TestLoadStoreDirectory(t *testing.T) {
	path := writeFile(t, "stores.json", `[
		{"name": "Seattle", "buCode": "215", "countryCode": "us"},
		{"name": "Berlin", "buCode": "101", "countryCode": "de"}
	]`)

	stores, err := LoadStoreDirectory(path)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, entities.Store{ID: 215, Name: "Seattle", CountryCode: "us"}, stores[0])

	_, err = LoadStoreDirectory(writeFile(t, "stores.json", `[{"name": "Bad", "buCode": "x1", "countryCode": "us"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid buCode")
}

func TestResolveStores(t *testing.T) {
	directory := memory.NewStoreRepository(1)
	require.NoError(t, directory.SaveStore(entities.Store{ID: 215, Name: "Seattle", CountryCode: "us"}))

	stores, err := ResolveStores(directory, []int{215, 999}, false, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Seattle", stores[0].DisplayName())
	assert.Equal(t, "999", stores[1].DisplayName())

	_, err = ResolveStores(directory, []int{215, 999}, true, zap.NewNop())
	var unknown *UnknownStoreError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, entities.StoreID(999), unknown.ID)
}
