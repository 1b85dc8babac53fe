package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glowbook/internal/api"
	"glowbook/internal/models"
	"glowbook/internal/session"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.session.Login(ctx, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
			fmt.Printf("Dashboard: %s\n", session.DashboardPath(user.Role))
			return nil
		}),
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.session.Register(ctx, api.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     models.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s. You are signed in as %s.\n", user.Name, user.Role)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (min 6 characters)")
	cmd.Flags().StringVar(&role, "role", "CUSTOMER", "account role: CUSTOMER or OWNER")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		}),
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in account",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.user(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			fmt.Printf("Role:      %s\n", user.Role)
			if user.Phone != "" {
				fmt.Printf("Phone:     %s\n", user.Phone)
			}
			fmt.Printf("Dashboard: %s\n", session.DashboardPath(user.Role))
			return nil
		}),
	}
}

func newAcceptInvitationCmd() *cobra.Command {
	var token, name, password, confirm string

	cmd := &cobra.Command{
		Use:   "accept-invitation",
		Short: "Accept a staff invitation and create the account",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			ctx, cancel := a.callCtx()
			defer cancel()

			user, err := a.session.AcceptInvitation(ctx, api.AcceptInvitationRequest{
				Token:    token,
				Name:     name,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Invitation accepted. Signed in as %s (%s).\n", user.Name, user.Role)
			return nil
		}),
	}

	cmd.Flags().StringVar(&token, "token", "", "invitation token from the email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "new password (min 6 characters)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "repeat the new password")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("confirm-password")
	return cmd
}
