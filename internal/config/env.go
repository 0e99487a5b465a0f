package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		cfg.Addr = v
	} else if v, ok := os.LookupEnv("PORT"); ok {
		cfg.Addr = ":" + v
	}
	if v, ok := os.LookupEnv("ENVIRONMENT"); ok {
		cfg.Environment = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("JWT_TTL_MINUTES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TokenTTL = time.Duration(n) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("S3_ACCESS_KEY"); ok {
		cfg.S3AccessKey = v
	}
	if v, ok := os.LookupEnv("S3_SECRET_KEY"); ok {
		cfg.S3SecretKey = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		cfg.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		cfg.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		cfg.S3BaseEndpoint = v
	}
}
