package migrations

import "embed"

// Files holds the forward-only SQL migrations compiled into the binary,
// applied in version order at startup.
//
//go:embed *.sql
var Files embed.FS
