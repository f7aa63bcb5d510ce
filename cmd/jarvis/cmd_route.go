package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jarvis-agent/internal/model"
	"jarvis-agent/internal/router"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <text...>",
		Short: "Print the route a message would take",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := model.NewConversation(model.NewUserMessage(strings.Join(args, " ")))
			d := router.New().Classify(conv)

			w := cmd.OutOrStdout()
			if d.Keyword != "" {
				fmt.Fprintf(w, "%s (keyword %q)\n", d.Route, d.Keyword)
				return nil
			}
			fmt.Fprintln(w, d.Route)
			return nil
		},
	}
}
