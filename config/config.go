package config

import "os"

// Config carries every runtime parameter the server needs. It is built once
// in main and passed explicitly into the wiring; nothing reads the
// environment after startup.
type Config struct {
	Env  string // "local", "dev", "prod"
	Host string
	Port string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	RedisAddr    string // empty disables the rate limiter
	KafkaBrokers string // empty disables event publishing
	KafkaTopic   string

	JWTSecret   string
	TokenTTLHrs int

	MetricsPort string
	LogLevel    string

	RateLimitPerMin int
}

// Load reads the environment and fills in defaults. godotenv is expected to
// have been loaded by the caller already.
func Load() Config {
	return Config{
		Env:  getEnv("ENV", "local"),
		Host: getEnv("HOST", "127.0.0.1"),
		Port: getEnv("PORT", "3000"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "dicebet"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: getEnv("DB_AUTO_MIGRATE", "false") == "true",

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC_BET_SETTLED", "bet.settled"),

		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		TokenTTLHrs: 24,

		MetricsPort: getEnv("METRICS_PORT", "9095"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RateLimitPerMin: 120,
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
