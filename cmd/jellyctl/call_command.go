package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCallCommand(ctx *commandContext) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "call METHOD PATH",
		Short: "Issue an arbitrary API request",
		Long: `Issue an arbitrary request against the server. The stored session token is
attached when one exists; otherwise the request goes out anonymously.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(strings.TrimSpace(args[0]))
			path := args[1]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			state, err := store.Load()
			if err != nil {
				return err
			}
			client, err := ctx.buildClient(state, state.AccessToken)
			if err != nil {
				return err
			}

			var body *bytes.Reader
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				body = bytes.NewReader([]byte(data))
			}

			ctx.logger().Debug("api call", "method", method, "path", path)

			var respBody []byte
			if body != nil {
				respBody, err = client.Call(cmd.Context(), method, path, body)
			} else {
				respBody, err = client.Call(cmd.Context(), method, path, nil)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var pretty bytes.Buffer
			if json.Indent(&pretty, respBody, "", "  ") == nil {
				fmt.Fprintln(out, pretty.String())
				return nil
			}
			fmt.Fprintln(out, string(respBody))
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return cmd
}
