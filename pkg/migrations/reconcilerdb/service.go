// Package reconcilerdb holds all the migrations for the bridge reconciler database
package reconcilerdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the reconciler database
var Migrations = migrate.NewMigrations()
