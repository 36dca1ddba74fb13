package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jelly/jellyfin"
)

func newUsersCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect server users",
	}

	cmd.AddCommand(newUsersListCommand(ctx))
	cmd.AddCommand(newUsersMeCommand(ctx))
	cmd.AddCommand(newUsersPublicCommand(ctx))

	return cmd
}

func newUsersListCommand(ctx *commandContext) *cobra.Command {
	var hidden bool
	var disabled bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users visible to the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := ctx.sessionClient()
			if err != nil {
				return err
			}
			users, err := client.Users(cmd.Context(), hidden, disabled)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, users)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUserTable(users))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include hidden users")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Include disabled users")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newUsersMeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the user bound to the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := ctx.sessionClient()
			if err != nil {
				return err
			}
			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, user)
		},
	}
}

func newUsersPublicCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "public",
		Short: "List users the server shows on its login screen",
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
			users, err := client.PublicUsers(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUserTable(users))
			return nil
		},
	}
}

func renderUserTable(users []jellyfin.User) string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		lastSeen := ""
		if user.LastActivityDate != nil {
			lastSeen = user.LastActivityDate.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			user.Name,
			user.ID,
			yesNo(user.Policy.IsAdministrator),
			yesNo(user.Policy.IsDisabled),
			lastSeen,
		})
	}
	return renderTable(
		[]string{"Name", "ID", "Admin", "Disabled", "Last activity"},
		rows,
	)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
