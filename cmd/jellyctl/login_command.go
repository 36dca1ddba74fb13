package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jelly/internal/session"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var username string
	var userID string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Jellyfin server and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" && userID == "" {
				return errors.New("either --username or --user-id is required")
			}
			if username != "" && userID != "" {
				return errors.New("--username and --user-id are mutually exclusive")
			}

			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			client, err := ctx.anonymousClient(state)
			if err != nil {
				return err
			}

			if username != "" {
				err = client.AuthenticateUserByName(cmd.Context(), username, password)
			} else {
				err = client.AuthenticateUserByID(cmd.Context(), userID, password)
			}
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			auth, ok := client.Auth()
			if !ok {
				return errors.New("login failed: no session returned")
			}

			state = session.State{
				ServerURL:   client.BaseURL().String(),
				ServerID:    auth.ServerID,
				UserID:      auth.User.ID,
				Username:    auth.User.Name,
				AccessToken: auth.AccessToken,
				DeviceID:    state.DeviceID,
				SavedAt:     time.Now().UTC(),
			}
			if err := store.Save(state); err != nil {
				return err
			}
			ctx.logger().Debug("session saved",
				"server", state.ServerURL,
				"user", state.Username,
				"device_id", state.DeviceID)

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", state.ServerURL, auth.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Authenticate by username")
	cmd.Flags().StringVar(&userID, "user-id", "", "Authenticate by user ID")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}
			if !state.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored session.")
				return nil
			}
			// Keep the device identifier so the server keeps seeing one device.
			if err := store.Save(session.State{DeviceID: state.DeviceID}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !state.Authenticated() {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}
			fmt.Fprintf(out, "Server:   %s\n", state.ServerURL)
			fmt.Fprintf(out, "User:     %s (%s)\n", state.Username, state.UserID)
			fmt.Fprintf(out, "Device:   %s\n", state.DeviceID)
			fmt.Fprintf(out, "Saved at: %s\n", state.SavedAt.Format(time.RFC3339))
			return nil
		},
	}
}

// promptPassword reads a password without echo when attached to a terminal,
// falling back to a plain line read for piped input.
func promptPassword(cmd *cobra.Command) (string, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		raw, err := term.ReadPassword(int(fd))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
