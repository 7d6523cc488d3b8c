// Package server provides the HTTP server for the autoatlas API.
//
// This file holds the general API annotations for Swag/OpenAPI generation.
// Endpoint annotations live in the handler files.
package server

// @title AutoAtlas API
// @version 1.0
// @description REST API for the car brand atlas: brands, models and generations
// @description from the specs dataset, and the car logo catalog with difficulty tiers.
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Admin API key, required only when one is configured
