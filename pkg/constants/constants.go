// Package constants provides shared constants used throughout the autoatlas codebase.
// This includes timeouts, limits, file permissions, matching thresholds and default
// paths that should be consistent across the application.
package constants

import "time"

// BinaryName is the CLI executable name.
const BinaryName = "autoatlas"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// ShutdownTimeout is how long the HTTP server waits for in-flight requests
	ShutdownTimeout = 5 * time.Second

	// ReadTimeout is the default HTTP read timeout
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the default HTTP write timeout
	WriteTimeout = 10 * time.Second

	// IdleTimeout is the default HTTP idle timeout
	IdleTimeout = 120 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Matching thresholds used by the specs index builder.
// These are fixed values that reproduce the behavior of the scraped dataset
// reconciliation; they are not tuned.
const (
	// MinTokenScore is the minimum ScoreModelForGeneration result accepted
	// by the token-score matcher.
	MinTokenScore = 40

	// MaxSynthesizedImages caps how many image files become generations
	// when a model has none.
	MaxSynthesizedImages = 12

	// PresentYear is the end year used for ranges ending in "present".
	PresentYear = 9999
)

// Tier constants
const (
	// DefaultTierCount is the number of logo difficulty tiers.
	DefaultTierCount = 8

	// MinPopularityScore is the lower bound used to normalize scores for tier classification.
	MinPopularityScore = -20

	// MaxPopularityScore is the upper bound used to normalize scores for tier classification.
	MaxPopularityScore = 120
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached API responses
	CacheTTL = 5 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 10 * time.Minute

	// ImageCacheControl is the Cache-Control header value for served images
	ImageCacheControl = "public, max-age=31536000, immutable"
)

// Path constants
const (
	// DefaultDataRoot is the default directory holding the datasets
	DefaultDataRoot = "public"

	// RecordsFilename is the scraped specs dataset file name
	RecordsFilename = "ultimatespecs_complete_db.jsonl"

	// ImageRootToken is the folder name that prefixes local image paths in the dataset
	ImageRootToken = "ultimatespecs_images"

	// ImageDir is the directory under the data root holding brand image folders
	ImageDir = "ultimatespecs"

	// LogoDatasetDir is the directory under the data root holding the logo dataset
	LogoDatasetDir = "car-logos-dataset"

	// ImageRoutePrefix is the HTTP path prefix for locally served images
	ImageRoutePrefix = "/api/ultimatespecs/"
)

// Default values
const (
	// DefaultLocale is the locale used when none can be negotiated
	DefaultLocale = "es"

	// DefaultPort is the default HTTP port
	DefaultPort = 8080

	// DefaultHost is the default bind address
	DefaultHost = "localhost"

	// DefaultPathPrefix is the default API path prefix
	DefaultPathPrefix = "/api/v1"

	// DefaultRateLimit is the default requests per minute per client IP
	DefaultRateLimit = 100

	// DefaultAuthHeader carries the admin API key
	DefaultAuthHeader = "X-API-Key"

	// DefaultCompressLevel is the gzip level for API responses
	DefaultCompressLevel = 5
)
