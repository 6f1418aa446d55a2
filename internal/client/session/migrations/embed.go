// Package migrations embeds the goose migrations for the client's durable
// session store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
