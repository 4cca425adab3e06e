// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of query construction, execution, and data mapping
// between domain entities and database records.
package postgres
