package storage

import "errors"

// ErrUnknownDriver is returned by drivers that cannot be built from the configured name.
var ErrUnknownDriver = errors.New("unknown storage driver")

const (
	// DriverMemory keeps state in process memory; it is lost on restart.
	DriverMemory = "memory"
	// DriverPostgres keeps state in PostgreSQL.
	DriverPostgres = "postgres"
)
