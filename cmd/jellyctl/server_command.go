package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newServerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Show public server information",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}
			client, err := ctx.anonymousClient(state)
			if err != nil {
				return err
			}

			info, err := client.PublicSystemInfo(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server:  %s\n", info.ServerName)
			fmt.Fprintf(out, "Product: %s %s\n", info.ProductName, info.Version)
			fmt.Fprintf(out, "OS:      %s\n", info.OperatingSystem)
			fmt.Fprintf(out, "ID:      %s\n", info.ID)
			return nil
		},
	}
}

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List active sessions on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := ctx.sessionClient()
			if err != nil {
				return err
			}
			sessions, err := client.Sessions(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				lastActive := ""
				if s.LastActivityDate != nil {
					lastActive = s.LastActivityDate.Format(time.RFC3339)
				}
				rows = append(rows, []string{
					s.UserName,
					s.Client,
					s.DeviceName,
					yesNo(s.IsActive),
					lastActive,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"User", "Client", "Device", "Active", "Last activity"},
				rows,
			))
			return nil
		},
	}
}
