package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"glowbook/internal/models"
	"glowbook/internal/schedule"
)

func newAppointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.user(ctx)
			if err != nil {
				return err
			}
			appts, err := a.client.MyAppointments(ctx)
			if err != nil {
				return err
			}

			switch user.Role {
			case models.RoleOwner:
				view := schedule.ForBusiness(appts)
				printSection("Upcoming", view.Upcoming)
				printSection("Completed", view.Completed)
				printSection("Cancelled", view.Cancelled)
			default:
				view := schedule.ForCustomer(appts, time.Now())
				printSection("Upcoming", view.Upcoming)
				printSection("Past", view.Past)
			}
			return nil
		}),
	}
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.user(ctx)
			if err != nil {
				return err
			}
			appt, err := a.client.GetAppointment(ctx, args[0])
			if err != nil {
				return err
			}

			updated, err := a.driver(user.Role).Cancel(ctx, appt)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s.\n", updated.ID, updated.Status)
			return nil
		}),
	}
}

func printSection(title string, appts []models.Appointment) {
	if len(appts) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, appt := range appts {
		fmt.Printf("  %s  %-24s %-10s %s\n",
			appt.ID,
			appt.Date.Local().Format("Mon Jan 2 15:04"),
			appt.Status,
			serviceName(appt))
	}
	fmt.Println()
}

func serviceName(appt models.Appointment) string {
	if appt.Service != nil {
		return appt.Service.Name
	}
	return appt.ServiceID
}
