package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"glowbook/internal/api"
	"glowbook/internal/capability"
	"glowbook/internal/common/config"
	"glowbook/internal/common/errors"
	"glowbook/internal/common/logger"
	"glowbook/internal/common/observability"
	"glowbook/internal/lifecycle"
	"glowbook/internal/models"
	"glowbook/internal/session"
)

// app holds everything the commands share. It is built lazily so commands
// like help never touch the config.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	obs     *observability.Observability
	client  *api.Client
	session *session.Manager
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	endpoint := ""
	if cfg.Tracing.Enabled {
		endpoint = cfg.Tracing.JaegerEndpoint
	}
	obs, err := observability.New(cfg.App.Name, endpoint)
	if err != nil {
		return nil, err
	}

	store, err := session.NewFileStore()
	if err != nil {
		return nil, err
	}
	manager := session.NewManager(store, log)
	client := api.NewClient(cfg.API.BaseURL, config.GetDuration(cfg.API.Timeout), manager, obs, log)
	manager.Bind(client)

	return &app{cfg: cfg, log: log, obs: obs, client: client, session: manager}, nil
}

func (a *app) close() {
	if a.obs != nil {
		a.obs.Shutdown()
	}
}

// callCtx bounds one backend operation.
func (a *app) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.GetDuration(a.cfg.API.Timeout)+5*time.Second)
}

// user resolves the signed-in account or fails the command.
func (a *app) user(ctx context.Context) (*models.User, error) {
	return a.session.Resolve(ctx)
}

// driver builds a lifecycle driver for the signed-in role with an
// interactive yes/no prompt for destructive actions.
func (a *app) driver(role models.Role) *lifecycle.Driver {
	return lifecycle.New(a.client, role, promptConfirm, a.log)
}

func promptConfirm(action capability.Action, appt *models.Appointment) bool {
	fmt.Printf("Really %s appointment %s scheduled for %s? [y/N]: ",
		action, appt.ID, appt.Date.Local().Format("Mon Jan 2 15:04"))
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// runWithApp wraps a command handler with app construction and teardown, and
// converts structured errors into the message the user should see.
func runWithApp(fn func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := fn(a, cmd, args); err != nil {
			if _, ok := err.(*errors.StandardError); ok {
				return fmt.Errorf("%s", errors.UserMessage(err))
			}
			return err
		}
		return nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glowctl",
		Short:         "Book and manage salon appointments from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newMeCmd(),
		newAcceptInvitationCmd(),
		newBusinessesCmd(),
		newBookCmd(),
		newAppointmentsCmd(),
		newStaffCmd(),
		newCancelCmd(),
		newNotificationsCmd(),
		newReviewCmd(),
	)
	return root
}
