package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Speak text through the TTS engine",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSpeak,
}

func init() {
	rootCmd.AddCommand(speakCmd)
}

func runSpeak(_ *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	text := strings.Join(args, " ")
	if err := assistantService.Speak(context.Background(), text); err != nil {
		return fmt.Errorf("speech failed: %w", err)
	}
	return nil
}
