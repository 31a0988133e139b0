package shopapi

import "embed"

// Migrations contains the embedded SQL migration files applied by the migrate
// command via goose.
//
//go:embed migrations/*.sql
var Migrations embed.FS
