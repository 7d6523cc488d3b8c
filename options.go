package autoatlas

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logging"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

// Option is a function that configures a Client.
type Option func(*config) error

// config holds the resolved Client settings.
type config struct {
	fs          afero.Fs
	dataRoot    string
	recordsPath string
	imageRoot   string
	logoRoot    string
	logger      *zerolog.Logger
	tierCount   int
	aliases     map[string]map[string][]string
	overrides   map[string]map[string]specs.Override
}

func defaultConfig() *config {
	return &config{
		fs:        afero.NewOsFs(),
		dataRoot:  constants.DefaultDataRoot,
		logger:    logging.Default(),
		tierCount: constants.DefaultTierCount,
	}
}

// recordPaths returns the candidate records files in lookup order.
func (c *config) recordPaths() []string {
	if c.recordsPath != "" {
		return []string{c.recordsPath}
	}
	return specs.DefaultRecordPaths(c.dataRoot)
}

func (c *config) resolvedImageRoot() string {
	if c.imageRoot != "" {
		return c.imageRoot
	}
	return filepath.Join(c.dataRoot, constants.ImageDir)
}

func (c *config) resolvedLogoRoot() string {
	if c.logoRoot != "" {
		return c.logoRoot
	}
	return c.dataRoot
}

// WithFS sets the filesystem all data is read from.
func WithFS(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return &errors.ValidationError{Field: "fs", Message: "filesystem is required"}
		}
		c.fs = fs
		return nil
	}
}

// WithDataRoot sets the directory holding the records file, the image
// folders and the logo dataset.
func WithDataRoot(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return &errors.ValidationError{Field: "data_root", Message: "cannot be empty"}
		}
		c.dataRoot = dir
		return nil
	}
}

// WithRecordsPath reads records from exactly this file instead of searching
// the default candidates.
func WithRecordsPath(path string) Option {
	return func(c *config) error {
		c.recordsPath = path
		return nil
	}
}

// WithImageRoot overrides the brand image directory.
func WithImageRoot(dir string) Option {
	return func(c *config) error {
		c.imageRoot = dir
		return nil
	}
}

// WithLogoRoot overrides the directory containing the logo dataset folder.
func WithLogoRoot(dir string) Option {
	return func(c *config) error {
		c.logoRoot = dir
		return nil
	}
}

// WithLogger sets the logger used while building.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithTierCount sets how many tiers logos are grouped into.
func WithTierCount(n int) Option {
	return func(c *config) error {
		if n < 1 || n > constants.DefaultTierCount {
			return &errors.ValidationError{
				Field:   "tier_count",
				Value:   n,
				Message: "must be between 1 and 8",
			}
		}
		c.tierCount = n
		return nil
	}
}

// WithAliases replaces the model alias table used by the index builder.
func WithAliases(aliases map[string]map[string][]string) Option {
	return func(c *config) error {
		c.aliases = aliases
		return nil
	}
}

// WithOverrides replaces the generation override table used by the index builder.
func WithOverrides(overrides map[string]map[string]specs.Override) Option {
	return func(c *config) error {
		c.overrides = overrides
		return nil
	}
}
