// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants drive the voice-assistant core: processing
// commands, speaking, and inspecting reminders and history.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
