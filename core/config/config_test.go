package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses env tags with defaults", func(t *testing.T) {
		type serverCfg struct {
			Addr    string        `env:"TEST_CFG_ADDR" envDefault:":8080"`
			Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"15s"`
		}

		t.Setenv("TEST_CFG_ADDR", ":9090")

		var cfg serverCfg
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("caches per concrete type", func(t *testing.T) {
		type cachedCfg struct {
			Value string `env:"TEST_CFG_CACHED" envDefault:"first"`
		}

		t.Setenv("TEST_CFG_CACHED", "first")
		var first cachedCfg
		require.NoError(t, config.Load(&first))

		// A changed environment does not affect the cached value.
		t.Setenv("TEST_CFG_CACHED", "second")
		var second cachedCfg
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("rejects non-pointer and non-struct targets", func(t *testing.T) {
		type anyCfg struct{}

		assert.Error(t, config.Load(anyCfg{}))
		assert.Error(t, config.Load(nil))

		s := "nope"
		assert.Error(t, config.Load(&s))
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		type requiredCfg struct {
			Token string `env:"TEST_CFG_REQUIRED_TOKEN,required"`
		}

		var cfg requiredCfg
		assert.Error(t, config.Load(&cfg))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustCfg struct {
			Token string `env:"TEST_CFG_MUST_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg mustCfg
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid config", func(t *testing.T) {
		type okCfg struct {
			Name string `env:"TEST_CFG_OK_NAME" envDefault:"landing"`
		}

		var cfg okCfg
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "landing", cfg.Name)
	})
}
