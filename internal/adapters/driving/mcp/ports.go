package mcp

import (
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant processes commands, speaks, and reports status.
	Assistant driving.AssistantService

	// Reminders exposes stored reminders as a resource.
	Reminders driven.ReminderStore

	// History exposes recent conversation turns as a resource.
	History driven.ConversationStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Reminders and History are optional; their resources degrade to empty.
	return nil
}
