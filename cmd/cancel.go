package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	bookingsService "github.com/m04kA/studio-booking/internal/service/bookings"
	"github.com/m04kA/studio-booking/pkg/metrics"
)

func newCancelCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking and notify the studio",
		Args:  cobra.ExactArgs(1),
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

			transport, closeTransport, err := newTransport(cfg, log)
			if err != nil {
				return err
			}
			defer closeTransport()

			// Метрики в разовой команде не собираются
			var m *metrics.Metrics
			dispatcher := newDispatcher(cfg, transport, newMeetingGenerator(cfg.Meeting), m, log)

			result, cancelErr := bookingsService.NewService(store.bookings, dispatcher, m, log).Cancel(ctx, args[0])

			closeCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Notify.SendTimeout)*time.Second)
			defer cancel()
			if err := dispatcher.Close(closeCtx); err != nil {
				log.Warn("Notification queue not drained: %v", err)
			}

			if cancelErr != nil {
				return cancelErr
			}

			out := cmd.OutOrStdout()
			if result.AlreadyCancelled {
				fmt.Fprintf(out, "booking %s was already cancelled\n", result.Booking.ID)
				return nil
			}
			fmt.Fprintf(out, "cancelled %s (%s %s, %s)\n",
				result.Booking.ID, result.Booking.Date, result.Booking.Time, result.Booking.Name)
			return nil
		},
	}
}
