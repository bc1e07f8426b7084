package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask the assistant to do something",
	Long: `Runs one natural language command through the assistant.
The query is interpreted, the matching action is executed, and the
reply is printed (and spoken, when TTS is enabled).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the full result as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	query := strings.Join(args, " ")
	action, result, err := assistantService.ProcessCommand(context.Background(), query)
	if err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	if askJSON {
		payload := map[string]any{
			"action": action,
			"query":  result,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(action.Message)
	cmd.Printf("(intent: %s, confidence: %.2f)\n", result.Intent, result.Confidence)
	return nil
}
