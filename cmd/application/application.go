// Package application provides the application interface for autoatlas commands.
//
// The Application interface is the contract between the application layer and
// command and server implementations. Commands accept it instead of the
// concrete App so they can be tested with a mock.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            ix, err := client.Index(cmd.Context())
//	            // ... use ix
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/autoatlas/autoatlas"
	"github.com/autoatlas/autoatlas/pkg/assets"
)

// Application provides what commands and the HTTP server need.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns the shared atlas client, created lazily.
	Client() (autoatlas.Client, error)

	// Assets returns how public asset URLs are formed.
	Assets() assets.Config

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
