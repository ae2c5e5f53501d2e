package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	StorageDriver string // memory or mysql
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address, empty disables caching
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	SeedDemoData  bool   // Seed the demo portfolio on startup
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),
		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		SeedDemoData:  os.Getenv("SEED_DEMO_DATA") == "true",
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = DriverMemory
	}
	return cfg
}

// DSN builds the MySQL data source name.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
