package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"glowbook/internal/booking"
	"glowbook/internal/models"
	"glowbook/internal/schedule"
)

func newBookCmd() *cobra.Command {
	var businessID, serviceID, staffID, dateStr, timeStr, phone string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		Long: "Book an appointment by walking the selection steps in one shot: " +
			"service, optional staff preference, date and time.",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			business, err := a.client.GetBusiness(ctx, businessID)
			if err != nil {
				return err
			}

			wizard := booking.NewWizard(a.client, schedule.NewResolver(a.client), business, a.log)
			if err := wizard.Load(ctx); err != nil {
				return err
			}
			if phone != "" {
				wizard.SetPhone(phone)
			}

			service := findService(business, serviceID)
			if service == nil {
				return fmt.Errorf("service %s not found at %s", serviceID, business.Name)
			}
			if err := wizard.SelectService(service); err != nil {
				return err
			}

			staff := findStaff(business, staffID)
			if staffID != "" && staff == nil {
				return fmt.Errorf("staff %s not found at %s", staffID, business.Name)
			}
			if err := wizard.SelectStaff(staff); err != nil {
				return err
			}

			date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date, want YYYY-MM-DD: %w", err)
			}
			if err := wizard.SelectDate(ctx, date); err != nil {
				return err
			}

			slots := wizard.Slots()
			if slots.Empty() {
				fmt.Println("No slots are offered that day.")
				return nil
			}
			if slots.FullyBooked() {
				fmt.Println("That day is fully booked, try another date.")
				return nil
			}

			if timeStr == "" {
				fmt.Println("Available times:")
				for _, slot := range slots.Available {
					fmt.Printf("  %s\n", slot.Time.Local().Format("15:04"))
				}
				return nil
			}

			at, err := pickSlot(slots, timeStr)
			if err != nil {
				return err
			}
			if err := wizard.SelectTime(at); err != nil {
				return err
			}

			summary, err := wizard.Summary()
			if err != nil {
				return err
			}
			fmt.Printf("Booking %s at %s on %s",
				summary.Service.Name, summary.Business.Name,
				summary.Time.Local().Format("Mon Jan 2 15:04"))
			if summary.Staff != nil {
				fmt.Printf(" with %s", summary.Staff.Name)
			}
			fmt.Printf(" for %.2f\n", summary.Price)

			appt, err := wizard.Submit(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Booked. Appointment %s is %s.\n", appt.ID, appt.Status)
			return nil
		}),
	}

	cmd.Flags().StringVar(&businessID, "business", "", "business id")
	cmd.Flags().StringVar(&serviceID, "service", "", "service id")
	cmd.Flags().StringVar(&staffID, "staff", "", "preferred staff id (optional)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&timeStr, "time", "", "time, HH:MM; omit to list available times")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone (min 10 digits; stored on the account)")
	cmd.MarkFlagRequired("business")
	cmd.MarkFlagRequired("service")
	cmd.MarkFlagRequired("date")
	return cmd
}

func findService(business *models.Business, id string) *models.Service {
	for i := range business.Services {
		if business.Services[i].ID == id {
			return &business.Services[i]
		}
	}
	return nil
}

func findStaff(business *models.Business, id string) *models.Staff {
	if id == "" {
		return nil
	}
	for i := range business.Staff {
		if business.Staff[i].ID == id {
			return &business.Staff[i]
		}
	}
	return nil
}

func pickSlot(slots schedule.SlotList, hhmm string) (time.Time, error) {
	for _, slot := range slots.Available {
		if slot.Time.Local().Format("15:04") == hhmm {
			return slot.Time, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %s is not among the available slots", hhmm)
}
