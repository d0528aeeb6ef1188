// Package config provides environment-based configuration.
//
// Loads an optional .env file (godotenv), maps environment variables to the
// Config struct, applies defaults, and validates required fields and the
// classifier timing knobs.
package config
