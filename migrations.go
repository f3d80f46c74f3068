// Package seoguard holds assets shared by the binaries of the dashboard
// backend, such as the embedded SQL migrations.
package seoguard

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
