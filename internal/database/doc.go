// Package database provides PostgreSQL-backed implementations of the domain
// repository interfaces, plus connection and migration helpers.
//
// Repositories translate pgx errors into domain sentinel errors at this
// boundary; callers never see driver errors for expected conditions.
package database
