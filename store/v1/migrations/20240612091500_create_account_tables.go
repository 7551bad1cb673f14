package migrations

import (
	"context"

	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			if _, err := db.NewCreateTable().
				Model((*types.User)(nil)).
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}

			if _, err := db.NewCreateTable().
				Model((*types.Session)(nil)).
				IfNotExists().
				ForeignKey(`(owner_id) references users (id) on delete cascade`).
				Exec(ctx); err != nil {
				return err
			}

			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			if _, err := db.NewDropTable().
				Model((*types.Session)(nil)).
				IfExists().
				Exec(ctx); err != nil {
				return err
			}

			if _, err := db.NewDropTable().
				Model((*types.User)(nil)).
				IfExists().
				Exec(ctx); err != nil {
				return err
			}

			return nil
		},
	)
}
