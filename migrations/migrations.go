// Package migrations embeds the SQL schema migrations so the server
// binary can apply them at startup without access to the source tree.
package migrations

import "embed"

// FS holds all goose SQL migration files.
//
//go:embed *.sql
var FS embed.FS
