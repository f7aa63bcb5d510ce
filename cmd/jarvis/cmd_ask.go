package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/app"
	"jarvis-agent/internal/chat"
	"jarvis-agent/internal/model"
)

// buildFn is replaced in tests.
var buildFn = app.Build

func newAskCmd() *cobra.Command {
	var (
		apiKey  string
		modelID string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "ask <text...>",
		Short: "Ask one question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadFn()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			l := newLogger(cfg, verbose)

			a, err := buildFn(ctx, cfg, l, app.DefaultGetterFactory)
			if err != nil {
				return err
			}

			input := chat.InvokeInput{
				Messages: []model.Message{model.NewUserMessage(strings.Join(args, " "))},
			}
			if apiKey != "" || modelID != "" {
				input.Config = &agent.Configuration{APIKey: apiKey, ModelName: modelID}
			}

			out, err := a.Chat.Invoke(ctx, input)
			if err != nil {
				if ce, ok := agent.AsConfigError(err); ok {
					return fmt.Errorf("%s: %s", ce.Code, ce.Reason)
				}
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "[%s]\n", out.Route)
			for _, m := range out.Messages {
				fmt.Fprintln(w, m.Text())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Groq API key (defaults to GROQ_API_KEY)")
	cmd.Flags().StringVar(&modelID, "model", "", "Groq model name (defaults to "+agent.DefaultModelName+")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	return cmd
}
