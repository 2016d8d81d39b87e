package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/bridge-reconciler/pkg/migrations/reconcilerdb"
	mghelper "github.com/chainsafe/bridge-reconciler/pkg/pgutil"
	mgrunner "github.com/chainsafe/bridge-reconciler/pkg/pgutil/migrations"
)

func TestReconcilerDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reconcilerdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"bridge_transfers", "bun_migrations"} {
		mghelper.AssertTableExists(t, db, table)
	}
	mghelper.AssertIndexExists(t, db, "idx_bridge_transfers_status")
	mghelper.AssertIndexExists(t, db, "idx_bridge_transfers_initiated_at")
	mghelper.AssertIndexExists(t, db, "idx_bridge_transfers_active")
}

func TestReconcilerDBMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reconcilerdb.Migrations)

	for _, cmd := range []string{mgrunner.CommandInit, mgrunner.CommandUp} {
		if err := mgrunner.RunMigrations(ctx, migrator, nil, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	mghelper.AssertTableExists(t, db, "bridge_transfers")

	if err := mgrunner.RunMigrations(ctx, migrator, nil, mgrunner.CommandDown); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	mghelper.AssertTableNotExists(t, db, "bridge_transfers")

	if err := mgrunner.RunMigrations(ctx, migrator, nil, mgrunner.CommandStatus); err != nil {
		t.Fatalf("RunMigrations(status) failed: %v", err)
	}
}
