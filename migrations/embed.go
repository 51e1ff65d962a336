// Package migrations embeds the case record schema for tooling and
// integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
