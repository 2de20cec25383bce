// Package migrations embeds the goose SQL migrations of the taxonomy store.
package migrations

import "embed"

// FS holds every *.sql migration, ready for goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
