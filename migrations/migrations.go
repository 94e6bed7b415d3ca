// Package migrations embeds the goose SQL migrations for the break ledger.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
