package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInvalidJSONBody = errors.New("body is not valid JSON")

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <endpoint>",
		Short: "Send an authenticated GET and print the response body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := a.rt.client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload.String())
			return nil
		},
	}
}

func (a *App) newPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post <endpoint> [json]",
		Short: "Send an authenticated POST and print the response body",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if len(args) == 2 {
				if !json.Valid([]byte(args[1])) {
					return errInvalidJSONBody
				}
				body = json.RawMessage(args[1])
			}

			payload, err := a.rt.client.Post(cmd.Context(), args[0], body)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload.String())
			return nil
		},
	}
}
