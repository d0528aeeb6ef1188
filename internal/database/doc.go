// Package database implements the PostgreSQL repositories and connection
// management.
//
// Migrations are embedded and applied through tern under a Postgres advisory
// lock so multiple instances can start concurrently. Repositories return
// domain structs and map storage-level conflicts to domain sentinel errors.
package database
