package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Manage reminders",
}

var remindersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reminders",
	RunE:  runRemindersList,
}

var remindersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindersDelete,
}

func init() {
	remindersCmd.AddCommand(remindersListCmd)
	remindersCmd.AddCommand(remindersDeleteCmd)
	rootCmd.AddCommand(remindersCmd)
}

func runRemindersList(cmd *cobra.Command, _ []string) error {
	if reminderStore == nil {
		return errors.New("reminder store not configured")
	}

	reminders, err := reminderStore.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing reminders: %w", err)
	}

	if len(reminders) == 0 {
		cmd.Println("No reminders set.")
		return nil
	}

	for _, r := range reminders {
		state := " "
		if r.Done {
			state = "x"
		}
		cmd.Printf("  [%s] %s at %s  (%s)\n", state, r.Task, r.Time, r.ID)
	}
	return nil
}

func runRemindersDelete(cmd *cobra.Command, args []string) error {
	if reminderStore == nil {
		return errors.New("reminder store not configured")
	}

	if err := reminderStore.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	cmd.Println("Reminder deleted.")
	return nil
}
