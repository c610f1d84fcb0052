package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_DRIVER", "Postgres")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")

	cfg := Load()

	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "exampleapi", cfg.Tracing.ServiceName)
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("SEED_FILE", "/etc/seeds.json")
	v.Set("SEED_OBJECT_KEY", "seeds/examples.json")
	v.Set("OTEL_SDK_DISABLED", true)
	v.Set("DB_CONN_MAX_LIFETIME_SEC", "60")

	cfg := FromViper(v)

	assert.Equal(t, "/etc/seeds.json", cfg.Seed.File)
	assert.Equal(t, "seeds/examples.json", cfg.Seed.ObjectKey)
	assert.True(t, cfg.Tracing.Disabled)
	assert.Equal(t, 60, cfg.Database.ConnMaxLifetimeSec)
	assert.Empty(t, cfg.Database.Host)
}
