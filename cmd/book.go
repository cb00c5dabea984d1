package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/studio-booking/internal/integrations/bookingapi"
	"github.com/m04kA/studio-booking/internal/selection"
)

type bookOptions struct {
	apiURL  string
	timeout time.Duration
	date    string
	time    string
	form    selection.Form
}

func newBookCmd(configPath *string) *cobra.Command {
	var opts bookOptions

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a slot through the public API, the same way the booking page does",
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

			slotCatalog, err := newCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			date, err := slotCatalog.ParseDate(opts.date)
			if err != nil {
				return err
			}

			client := bookingapi.NewClient(opts.apiURL, opts.timeout, log)
			machine := selection.NewMachine(client, slotCatalog, log)
			ctx := context.Background()
			out := cmd.OutOrStdout()

			// Листаем календарь до месяца нужной даты
			machine.Start()
			target := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, slotCatalog.Location())
			for machine.Month().Before(target) {
				if err := machine.NextMonth(); err != nil {
					return err
				}
			}

			if err := machine.SelectDate(ctx, date); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s:\n", machine.SelectedDate())
			for _, opt := range machine.TimeOptions() {
				state := "free"
				if opt.Booked {
					state = "booked"
				}
				fmt.Fprintf(out, "  %s  %s\n", opt.Time, state)
			}

			if err := machine.SelectTime(opts.time); err != nil {
				return err
			}

			if err := machine.Submit(ctx, opts.form); err != nil {
				return errors.New(machine.FormError())
			}

			confirmation := machine.Confirmation()
			fmt.Fprintf(out, "booked %s at %s\nmeeting link: %s\n",
				confirmation.Date, confirmation.Time, confirmation.MeetingLink)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api", "http://localhost:8080", "booking API base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP timeout")
	cmd.Flags().StringVar(&opts.date, "date", "", "date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&opts.time, "time", "", "time in HH:MM format")
	cmd.Flags().StringVar(&opts.form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&opts.form.Email, "email", "", "your email")
	cmd.Flags().StringVar(&opts.form.Message, "message", "", "optional message for the studio")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
