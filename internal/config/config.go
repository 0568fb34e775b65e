package config

import (
	"os"
	"strconv"
	"strings"
)

// Repository backends selectable through REPOSITORY_DRIVER.
const (
	DriverMemory      = "memory"
	DriverPostgres    = "postgres"
	DriverObjectStore = "objectstore"
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

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ProductConfig controls what the product demo serves.
type ProductConfig struct {
	// Driver is one of DriverMemory, DriverPostgres or DriverObjectStore.
	Driver string
	// Stub is the product string served by the memory backend and used to seed
	// the other backends.
	Stub string
	// ObjectKey is the key holding the product string in the object store.
	ObjectKey string
}

// ConsoleConfig holds settings for the console exercises.
type ConsoleConfig struct {
	CatalogCapacity int
	NoColor         bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	Location string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Product  ProductConfig
	Console  ConsoleConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Location: getEnv("TZ_LOCATION", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Product: ProductConfig{
			Driver:    strings.ToLower(getEnv("REPOSITORY_DRIVER", DriverMemory)),
			Stub:      getEnv("PRODUCT_STUB", "product"),
			ObjectKey: getEnv("PRODUCT_OBJECT_KEY", "products/current.txt"),
		},
		Console: ConsoleConfig{
			CatalogCapacity: getEnvInt("CATALOG_CAPACITY", 10),
			NoColor:         getEnvBool("NO_COLOR", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
