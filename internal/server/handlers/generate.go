// Package handlers provides HTTP request handlers for the autoatlas API.
//
// Handlers are organized by domain:
//
//   - brands.go: brand listing, name resolution, brand and model detail
//   - logos.go: logo explorer and per-logo tier classification
//   - tiers.go: tier metadata and tier contents
//   - static.go: logo and flag redirects, local model images
//   - admin.go: reload and statistics
//   - health.go: liveness and readiness
//
// List handlers check the cache first and store their payload on a miss.
package handlers

//go:generate gomarkdoc --output README.md .
