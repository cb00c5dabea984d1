package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	getAvailableSlotsUC "github.com/m04kA/studio-booking/internal/usecase/get_available_slots"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print offered and booked times for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			log, err := newCLILogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := context.Background()
			store, err := openStorage(ctx, cfg, log, nil, false)
			if err != nil {
				return err
			}
			defer store.Close()

			slotCatalog, err := newCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			result, err := getAvailableSlotsUC.NewUseCase(store.bookings, slotCatalog, log).
				Execute(ctx, &getAvailableSlotsUC.Request{Date: date})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			booked := color.New(color.FgRed).SprintFunc()
			free := color.New(color.FgGreen).SprintFunc()

			fmt.Fprintf(out, "%s (selectable: %t, bookable until %s)\n", result.Date, result.Selectable, result.MaxDate)
			for _, slot := range result.Slots {
				if slot.Booked {
					fmt.Fprintf(out, "  %s  %s\n", slot.Time, booked("booked"))
				} else {
					fmt.Fprintf(out, "  %s  %s\n", slot.Time, free("free"))
				}
			}
			if len(result.Slots) == 0 {
				fmt.Fprintln(out, "  no times offered on this date")
			}
			fmt.Fprintf(out, "booked: %v\n", result.Booked)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
