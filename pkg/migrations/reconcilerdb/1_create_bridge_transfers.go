package reconcilerdb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/bridge-reconciler/pkg/pgutil/migrations"
	"github.com/chainsafe/bridge-reconciler/pkg/transferstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating bridge_transfers table...")
		if err := mghelper.CreateSchema(ctx, db, &transferstore.TransferDao{}); err != nil {
			return err
		}
		// active-set scans filter on status and order by initiated_at
		return mghelper.CreateModelIndexes(ctx, db, &transferstore.TransferDao{}, "status", "initiated_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping bridge_transfers table...")
		return mghelper.DropTables(ctx, db, &transferstore.TransferDao{})
	})
}
