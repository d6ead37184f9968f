// Package store defines the persistence interfaces for the CRM along with
// the sentinel errors and row types shared by their implementations. The
// concrete PostgreSQL implementations live in internal/platform/postgres.
package store
