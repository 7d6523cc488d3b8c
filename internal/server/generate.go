// Package server provides the HTTP server for the autoatlas API.
//
// The layering is CLI → App → Server → Router → Handlers:
//
//   - Server: lifecycle, response cache and index hooks
//   - Config: server configuration with defaults from pkg/constants
//   - Router: chi routes and middleware chain
//   - Handlers: HTTP request handlers organized by domain
//
// Usage:
//
//	srv, err := server.New(app, server.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	srv.Start(ctx)
//	httpServer := srv.HTTPServer()
//	err = httpServer.ListenAndServe()
package server

//go:generate gomarkdoc --output README.md .
