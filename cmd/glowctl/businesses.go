package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glowbook/internal/api"
)

func newBusinessesCmd() *cobra.Command {
	var category, city, search string

	cmd := &cobra.Command{
		Use:   "businesses [id]",
		Short: "Browse the salon directory, or show one business",
		Args:  cobra.MaximumNArgs(1),
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			if len(args) == 1 {
				return showBusiness(a, args[0])
			}

			businesses, err := a.client.ListBusinesses(ctx, api.BusinessFilter{
				Category: category,
				City:     city,
				Search:   search,
			})
			if err != nil {
				return err
			}
			if len(businesses) == 0 {
				fmt.Println("No businesses match.")
				return nil
			}
			for _, b := range businesses {
				rating := ""
				if b.AverageRating > 0 {
					rating = fmt.Sprintf("  %.1f stars", b.AverageRating)
				}
				fmt.Printf("%-24s  %-20s %s%s\n", b.ID, b.Name, b.City, rating)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&search, "search", "", "search by name")
	return cmd
}

func showBusiness(a *app, id string) error {
	ctx, cancel := a.callCtx()
	defer cancel()

	b, err := a.client.GetBusiness(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s, %s\n", b.Name, b.Address, b.City)
	if b.Description != "" {
		fmt.Println(b.Description)
	}

	if len(b.Services) > 0 {
		fmt.Println("\nServices:")
		for _, svc := range b.Services {
			if !svc.Active {
				continue
			}
			line := fmt.Sprintf("  %-24s %3d min  %8.2f", svc.Name, svc.Duration, svc.DisplayPrice())
			if svc.Discounted() {
				line += fmt.Sprintf("  (%.0f%% OFF, was %.2f)", svc.Discount, svc.Price)
			}
			fmt.Println(line)
		}
	}

	if len(b.Staff) > 0 {
		fmt.Println("\nStaff:")
		for _, member := range b.Staff {
			fmt.Printf("  %-24s %s\n", member.Name, member.Title)
		}
	}

	if len(b.Reviews) > 0 {
		fmt.Printf("\nReviews (%.1f average):\n", b.AverageRating)
		for _, review := range b.Reviews {
			fmt.Printf("  %d stars  %s\n", review.Rating, review.Comment)
		}
	}
	return nil
}
