package migrations

import "embed"

// FS embeds the SQL migration files in this directory. They are applied
// through golang-migrate's iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
