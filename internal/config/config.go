// Package config handles server configuration: compiled-in defaults,
// overlaid by a .env file, environment variables and command-line flags,
// in that order.
package config

import "time"

// Config holds runtime settings for the imagevault server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - Environment: deployment environment name, reported by /health.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - TokenTTL: access token lifetime.
//   - BcryptCost: work factor for password hashing. Stored hashes embed
//     their own cost, so changing it does not invalidate existing hashes.
//   - S3*: object storage settings for presigned upload/download URLs.
type Config struct {
	Addr        string
	Environment string
	DatabaseDSN string
	SecretKey   string
	TokenTTL    time.Duration
	BcryptCost  int

	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults. These are
// insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.Environment = "development"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenTTL = 1 * time.Hour
	c.BcryptCost = 10
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "uploads"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from .env / environment variables and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
