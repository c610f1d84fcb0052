package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// StoreMemory keeps examples in process memory, seeded at startup.
	StoreMemory = "memory"
	// StorePostgres keeps examples in the PostgreSQL "examples" table.
	StorePostgres = "postgres"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings used to fetch a seed document.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SeedConfig selects where the startup example list comes from.
// ObjectKey wins over File; both empty means the built-in list.
type SeedConfig struct {
	File      string
	ObjectKey string
}

// TracingConfig mirrors the standard OTEL_* environment variables.
type TracingConfig struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Sampler     string
	SamplerArg  string
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	AppHost     string
	Port        string
	LogLevel    string
	TimeZone    string
	StoreDriver string
	Seed        SeedConfig
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Tracing     TracingConfig
}

var defaults = map[string]any{
	"APP_HOST":                    "localhost:8080",
	"PORT":                        "8080",
	"LOG_LEVEL":                   "info",
	"TZ_LOCATION":                 "UTC",
	"STORE_DRIVER":                StoreMemory,
	"SEED_FILE":                   "",
	"SEED_OBJECT_KEY":             "",
	"DB_HOST":                     "",
	"DB_PORT":                     "5432",
	"DB_USER":                     "",
	"DB_PASSWORD":                 "",
	"DB_NAME":                     "",
	"DB_SSLMODE":                  "disable",
	"DB_MAX_OPEN_CONNS":           10,
	"DB_MAX_IDLE_CONNS":           5,
	"DB_CONN_MAX_LIFETIME_SEC":    300,
	"MINIO_ENDPOINT":              "",
	"MINIO_ACCESS_KEY":            "",
	"MINIO_SECRET_KEY":            "",
	"MINIO_BUCKET":                "",
	"MINIO_USE_SSL":               false,
	"OTEL_SDK_DISABLED":           false,
	"OTEL_SERVICE_NAME":           "exampleapi",
	"OTEL_EXPORTER_OTLP_PROTOCOL": "grpc",
	"OTEL_TRACES_SAMPLER":         "parentbased_traceidratio",
	"OTEL_TRACES_SAMPLER_ARG":     "1.0",
}

// Load reads configuration from environment variables.
// A .env file is picked up when the binary imports godotenv/autoload;
// real environment variables take precedence.
func Load() *AppConfig {
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()
	return v
}

// FromViper maps an already populated viper instance onto AppConfig.
func FromViper(v *viper.Viper) *AppConfig {
	return &AppConfig{
		AppHost:     v.GetString("APP_HOST"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		TimeZone:    v.GetString("TZ_LOCATION"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		Seed: SeedConfig{
			File:      v.GetString("SEED_FILE"),
			ObjectKey: v.GetString("SEED_OBJECT_KEY"),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
		Tracing: TracingConfig{
			Disabled:    v.GetBool("OTEL_SDK_DISABLED"),
			ServiceName: v.GetString("OTEL_SERVICE_NAME"),
			Protocol:    v.GetString("OTEL_EXPORTER_OTLP_PROTOCOL"),
			Sampler:     v.GetString("OTEL_TRACES_SAMPLER"),
			SamplerArg:  v.GetString("OTEL_TRACES_SAMPLER_ARG"),
		},
	}
}
