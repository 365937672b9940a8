package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Resolver ResolverConfig
	Lexicon  LexiconConfig
	Training TrainingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr   string
	HealthAddr string
}

// ResolverConfig tunes the correction resolver.
type ResolverConfig struct {
	// PaddingMarkers are the trailing filler characters stripped by the
	// fuzzy match (MRZ-style fixed-width padding).
	PaddingMarkers string
}

// LexiconConfig tunes the correction learner.
type LexiconConfig struct {
	// LearningThreshold is the number of identical (original -> corrected)
	// observations before a pattern is promoted into the lexicon.
	LearningThreshold int
	// TypeThresholds overrides LearningThreshold per document type,
	// parsed from "invoice=1,receipt=2" form.
	TypeThresholds map[string]int
	// AutoCorrectionEnabled gates lexicon application during resolution.
	AutoCorrectionEnabled bool
}

// TrainingConfig holds training-sample collection settings.
type TrainingConfig struct {
	SamplesDir string
	MinSamples int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:   getEnv("GRPC_ADDR", ":8080"),
			HealthAddr: getEnv("HEALTH_ADDR", ":9090"),
		},
		Resolver: ResolverConfig{
			PaddingMarkers: getEnv("PADDING_MARKERS", "<"),
		},
		Lexicon: LexiconConfig{
			LearningThreshold:     getEnvAsInt("LEXICON_LEARNING_THRESHOLD", 1),
			TypeThresholds:        getEnvAsIntMap("LEXICON_TYPE_THRESHOLDS"),
			AutoCorrectionEnabled: getEnvAsBool("AUTO_CORRECTION_ENABLED", true),
		},
		Training: TrainingConfig{
			SamplesDir: getEnv("TRAINING_SAMPLES_DIR", "./data/training_samples"),
			MinSamples: getEnvAsInt("TRAINING_MIN_SAMPLES", 10),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsIntMap parses "key1=1,key2=2" into a map. Malformed pairs are
// dropped rather than failing startup.
func getEnvAsIntMap(key string) map[string]int {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	out := make(map[string]int)
	for _, pair := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			continue
		}
		out[strings.TrimSpace(k)] = n
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ThresholdFor returns the learning threshold for a document type scope,
// falling back to the global default.
func (c LexiconConfig) ThresholdFor(docType string) int {
	if t, ok := c.TypeThresholds[docType]; ok {
		return t
	}
	if c.LearningThreshold < 1 {
		return 1
	}
	return c.LearningThreshold
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Lexicon.LearningThreshold < 1 {
		return NewAppError("CONFIG_ERROR", "LEXICON_LEARNING_THRESHOLD must be >= 1", ErrInvalidInput)
	}
	return nil
}
