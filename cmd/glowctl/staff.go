package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"glowbook/internal/models"
	"glowbook/internal/schedule"
)

func newStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Staff workflow: queue, claim, confirm, complete, no-show",
	}
	cmd.AddCommand(
		newStaffQueueCmd(),
		newStaffClaimCmd(),
		newStaffConfirmCmd(),
		newStaffCompleteCmd(),
		newStaffVerifyCmd(),
		newStaffNoShowCmd(),
	)
	return cmd
}

func newStaffQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show your upcoming work and the unassigned pool",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.user(ctx)
			if err != nil {
				return err
			}
			appts, err := a.client.StaffAppointments(ctx)
			if err != nil {
				return err
			}

			view := schedule.ForStaff(appts, user.ID, time.Now())
			printSection("Mine", view.Mine)
			printSection("Unassigned", view.Unassigned)
			if len(view.Mine) == 0 && len(view.Unassigned) == 0 {
				fmt.Println("Nothing scheduled.")
			}
			return nil
		}),
	}
}

// staffAction wires the shared fetch-then-act shape of the staff commands.
func staffAction(fn func(a *app, user *models.User, appt *models.Appointment, args []string) error) func(*cobra.Command, []string) error {
	return runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
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
		return fn(a, user, appt, args)
	})
}

func newStaffClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <appointment-id>",
		Short: "Claim an unassigned appointment",
		Args:  cobra.ExactArgs(1),
		RunE: staffAction(func(a *app, user *models.User, appt *models.Appointment, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			updated, err := a.driver(user.Role).Claim(ctx, appt)
			if err != nil {
				if updated != nil && updated.Assigned() {
					fmt.Println("Too late: someone else already claimed it.")
				}
				return err
			}
			fmt.Printf("Claimed appointment %s.\n", updated.ID)
			return nil
		}),
	}
}

func newStaffConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <appointment-id>",
		Short: "Confirm a pending appointment",
		Args:  cobra.ExactArgs(1),
		RunE: staffAction(func(a *app, user *models.User, appt *models.Appointment, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			updated, err := a.driver(user.Role).Confirm(ctx, appt)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s.\n", updated.ID, updated.Status)
			return nil
		}),
	}
}

func newStaffCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <appointment-id>",
		Short: "Send the completion code to the customer",
		Args:  cobra.ExactArgs(1),
		RunE: staffAction(func(a *app, user *models.User, appt *models.Appointment, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			if err := a.driver(user.Role).InitiateCompletion(ctx, appt); err != nil {
				return err
			}
			fmt.Println("Completion code sent. Ask the customer for it, then run:")
			fmt.Printf("  glowctl staff verify %s <code>\n", appt.ID)
			return nil
		}),
	}
}

func newStaffVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <appointment-id> <code>",
		Short: "Verify the customer's completion code",
		Args:  cobra.ExactArgs(2),
		RunE: staffAction(func(a *app, user *models.User, appt *models.Appointment, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			updated, err := a.driver(user.Role).VerifyCompletion(ctx, appt, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s.\n", updated.ID, updated.Status)
			return nil
		}),
	}
}

func newStaffNoShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "no-show <appointment-id>",
		Short: "Record that the customer did not arrive",
		Args:  cobra.ExactArgs(1),
		RunE: staffAction(func(a *app, user *models.User, appt *models.Appointment, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			updated, err := a.driver(user.Role).MarkNoShow(ctx, appt)
			if err != nil {
				return err
			}
			fmt.Printf("Appointment %s is now %s.\n", updated.ID, updated.Status)
			return nil
		}),
	}
}
