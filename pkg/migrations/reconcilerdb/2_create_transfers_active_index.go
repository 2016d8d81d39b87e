package reconcilerdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"
)

const activeIndexName = "idx_bridge_transfers_active"

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating partial index on active bridge transfers...")
		_, err := db.NewCreateIndex().
			Table("bridge_transfers").
			Index(activeIndexName).
			IfNotExists().
			Column("initiated_at", "id").
			Where("status <> 'completed'").
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping partial index on active bridge transfers...")
		_, err := db.NewDropIndex().
			Index(activeIndexName).
			IfExists().
			Exec(ctx)
		return err
	})
}
