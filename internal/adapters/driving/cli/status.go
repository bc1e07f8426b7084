package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show assistant status and capabilities",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	status := assistantService.Status(context.Background())

	if statusJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s %s (%s)\n", status.AssistantName, status.Version, status.Platform)
	cmd.Printf("  Annotator:  %s\n", status.Annotator)
	if status.TTSEngine != "" {
		cmd.Printf("  TTS engine: %s\n", status.TTSEngine)
	}
	if len(status.Voices) > 0 {
		cmd.Printf("  Voices:     %s\n", strings.Join(status.Voices, ", "))
	}

	features := make([]string, 0, len(status.Features))
	for name := range status.Features {
		features = append(features, name)
	}
	sort.Strings(features)
	cmd.Println("  Features:")
	for _, name := range features {
		state := "off"
		if status.Features[name] {
			state = "on"
		}
		cmd.Printf("    %-8s %s\n", name, state)
	}

	cmd.Printf("  Intents:    %s\n", strings.Join(status.Intents, ", "))
	return nil
}
