// Package cli provides the command-line interface. Commands talk to
// the core exclusively through the driving ports; wiring happens in
// main via SetServices.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Services carries everything the commands need. Unset fields degrade
// to "not configured" errors at command time, never at wiring time.
type Services struct {
	Assistant driving.AssistantService
	Reminders driven.ReminderStore
	History   driven.ConversationStore
	// Serve starts the local web UI server and blocks until the context
	// is cancelled.
	Serve   func(ctx context.Context, port int) error
	Version string
}

var (
	assistantService driving.AssistantService
	reminderStore    driven.ReminderStore
	historyStore     driven.ConversationStore
	serveFunc        func(ctx context.Context, port int) error
	version          = "dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prime",
	Short: "Voice assistant for your desktop",
	Long: `prime is a local-first voice assistant. It understands natural
language commands to open applications, play videos, check the weather,
read the news and set reminders, and can speak its replies aloud.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the commands to their collaborators.
func SetServices(s Services) {
	assistantService = s.Assistant
	reminderStore = s.Reminders
	historyStore = s.History
	serveFunc = s.Serve
	if s.Version != "" {
		version = s.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
