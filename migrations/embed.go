package migrations

import "embed"

// Files holds the forward-only SQL migrations compiled into the tastebook
// binary; internal/db applies them in version order on open.
//
//go:embed *.sql
var Files embed.FS
