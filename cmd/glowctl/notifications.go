package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"glowbook/internal/notify"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read and manage your notification inbox",
	}
	cmd.AddCommand(
		newNotificationsListCmd(),
		newNotificationsWatchCmd(),
		newNotificationsReadCmd(),
		newNotificationsReadAllCmd(),
		newNotificationsDeleteCmd(),
	)
	return cmd
}

func (a *app) inbox(ctx context.Context) (*notify.Store, error) {
	store := notify.NewStore(a.client, a.log)
	if err := store.Bootstrap(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func newNotificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the newest notifications",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			store, err := a.inbox(ctx)
			if err != nil {
				return err
			}

			entries := store.Notifications()
			if len(entries) == 0 {
				fmt.Println("Inbox is empty.")
				return nil
			}
			fmt.Printf("%d unread\n\n", store.Unread())
			for _, entry := range entries {
				marker := " "
				if !entry.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  %-24s %s\n", marker, entry.ID, entry.Type, entry.Message)
			}
			return nil
		}),
	}
}

func newNotificationsWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream notifications live until interrupted",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			bootCtx, cancel := a.callCtx()
			user, err := a.user(bootCtx)
			if err != nil {
				cancel()
				return err
			}
			store, err := a.inbox(bootCtx)
			cancel()
			if err != nil {
				return err
			}
			fmt.Printf("%d unread. Watching for updates, Ctrl-C to stop.\n", store.Unread())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			channel := notify.NewChannel(a.cfg.Push.URL, user.ID, a.log)
			go channel.Run(ctx)
			defer channel.Close()

			for event := range channel.Events() {
				store.Apply(event)
				switch event.Kind {
				case notify.EventNewNotification:
					fmt.Printf("new: %-24s %s\n", event.Notification.Type, event.Notification.Message)
				case notify.EventUnreadCount:
					fmt.Printf("unread: %d\n", event.UnreadCount)
				}
			}
			return nil
		}),
	}
}

func newNotificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			store, err := a.inbox(ctx)
			if err != nil {
				return err
			}
			if err := store.MarkRead(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked read. %d unread left.\n", store.Unread())
			return nil
		}),
	}
}

func newNotificationsReadAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark everything read",
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			store, err := a.inbox(ctx)
			if err != nil {
				return err
			}
			if err := store.MarkAllRead(ctx); err != nil {
				return err
			}
			fmt.Println("All notifications marked read.")
			return nil
		}),
	}
}

func newNotificationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <notification-id>",
		Short: "Delete one notification",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(func(a *app, cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callCtx()
			defer cancel()

			store, err := a.inbox(ctx)
			if err != nil {
				return err
			}
			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		}),
	}
}
