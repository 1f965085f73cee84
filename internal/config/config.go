package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Physics defaults (used until an active preset is loaded from the DB)
	BallRadius    float64
	Friction      float64
	MinVelocity   float64
	TimeStep      float64
	MaxPoints     int
	VelocityScale float64
	Restitution   float64

	// Prediction limits
	DefaultMaxBounces       int
	PredictRateLimitSeconds int

	// Security
	JWTSecret        string
	AdminTokenTTLMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/cueline?sslmode=disable"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Physics defaults
		BallRadius:    getEnvFloat("PHYSICS_BALL_RADIUS", 8),
		Friction:      getEnvFloat("PHYSICS_FRICTION", 0.985),
		MinVelocity:   getEnvFloat("PHYSICS_MIN_VELOCITY", 0.5),
		TimeStep:      getEnvFloat("PHYSICS_TIME_STEP", 1.0),
		MaxPoints:     getEnvInt("PHYSICS_MAX_POINTS", 1000),
		VelocityScale: getEnvFloat("PHYSICS_VELOCITY_SCALE", 0.5),
		Restitution:   getEnvFloat("PHYSICS_RESTITUTION", 0.92),

		// Prediction limits
		DefaultMaxBounces:       getEnvInt("DEFAULT_MAX_BOUNCES", 10),
		PredictRateLimitSeconds: getEnvInt("PREDICT_RATE_LIMIT_SECONDS", 0),

		// Security
		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
		AdminTokenTTLMin: getEnvInt("ADMIN_TOKEN_TTL_MINUTES", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
