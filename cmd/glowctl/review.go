package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glowbook/internal/api"
)

func newReviewCmd() *cobra.Command {
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:   "review <business-id>",
		Short: "Leave a review for a business",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			review, err := a.client.CreateReview(ctx, args[0], api.ReviewRequest{
				Rating:  rating,
				Comment: comment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Thanks! Review %s posted with %d stars.\n", review.ID, review.Rating)
			return nil
		}),
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	cmd.MarkFlagRequired("rating")
	return cmd
}
