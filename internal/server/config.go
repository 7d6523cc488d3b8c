package server

import (
	"time"

	"github.com/autoatlas/autoatlas/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Admin authentication. Admin routes are only guarded when AdminKey is set.
	AdminKey   string
	AuthHeader string

	// Performance settings
	RateLimit     int // Requests per minute per IP (0 to disable)
	CacheTTL      time.Duration
	CompressLevel int // 0 disables response compression

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:          constants.DefaultHost,
		Port:          constants.DefaultPort,
		PathPrefix:    constants.DefaultPathPrefix,
		CORSEnabled:   false,
		CORSOrigins:   []string{},
		AuthHeader:    constants.DefaultAuthHeader,
		RateLimit:     constants.DefaultRateLimit,
		CacheTTL:      constants.CacheTTL,
		CompressLevel: constants.DefaultCompressLevel,
		ReadTimeout:   constants.ReadTimeout,
		WriteTimeout:  constants.WriteTimeout,
		IdleTimeout:   constants.IdleTimeout,
	}
}
