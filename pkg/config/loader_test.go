package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/config"
)

type dbConfig struct {
	Host string `env:"TEST_DB_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_DB_PORT" envDefault:"5432"`
	User string `env:"TEST_DB_USER,required"`
}

type proxyConfig struct {
	Token   string `env:"TEST_PROXY_TOKEN"`
	Retries int    `env:"TEST_PROXY_RETRIES" envDefault:"0"`
}

func TestLoadSuccess(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6432")
	t.Setenv("TEST_DB_USER", "saleshub")

	var cfg dbConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6432, cfg.Port)
	assert.Equal(t, "saleshub", cfg.User)
}

func TestLoadDefaults(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_DB_USER", "saleshub")

	var cfg dbConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
}

func TestLoadMissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg dbConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadCachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_DB_USER", "first")

	var first dbConfig
	require.NoError(t, config.Load(&first))

	// A changed environment does not invalidate the cached copy.
	t.Setenv("TEST_DB_USER", "second")
	var again dbConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.User)
}

func TestLoadDistinctTypes(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_DB_USER", "saleshub")
	t.Setenv("TEST_PROXY_TOKEN", "tok")

	var db dbConfig
	var px proxyConfig
	require.NoError(t, config.Load(&db))
	require.NoError(t, config.Load(&px))
	assert.Equal(t, "saleshub", db.User)
	assert.Equal(t, "tok", px.Token)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[dbConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnvMissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
}

func TestMustLoadPanics(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg dbConfig
		config.MustLoad(&cfg)
	})
}
