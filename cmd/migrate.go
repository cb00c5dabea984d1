package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/studio-booking/internal/config"
	"github.com/m04kA/studio-booking/internal/infra/storage/migrations"
	"github.com/m04kA/studio-booking/pkg/txmanager"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				names, err := migrations.List()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.StorageDriverPostgres {
				return fmt.Errorf("migrate: storage.driver is %q, migrations apply to %q only",
					cfg.Storage.Driver, config.StorageDriverPostgres)
			}

			log, err := newCLILogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := context.Background()
			db, err := openDB(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Up(ctx, db, txmanager.NewTransactionManager(db), log)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(out, "database is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(out, "applied %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list embedded migrations without connecting")
	return cmd
}
