// Package migrations embeds the versioned PostgreSQL schema
package migrations

import "embed"

// FS holds every *.sql migration of the service
//
//go:embed *.sql
var FS embed.FS
