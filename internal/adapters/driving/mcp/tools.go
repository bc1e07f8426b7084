package mcp

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CommandInput is the input schema for the process_command tool.
type CommandInput struct {
	Command string `json:"command" jsonschema:"the natural-language command to process"`
}

// CommandOutput is the output schema for the process_command tool.
type CommandOutput struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities,omitempty"`
	Context    []string          `json:"context,omitempty"`
}

// SpeakInput is the input schema for the speak tool.
type SpeakInput struct {
	Text string `json:"text" jsonschema:"the text to speak aloud"`
}

// SpeakOutput is the output schema for the speak tool.
type SpeakOutput struct {
	Spoken bool `json:"spoken"`
}

// StatusInput is the input schema for the get_status tool.
type StatusInput struct{}

// StatusOutput is the output schema for the get_status tool.
type StatusOutput struct {
	AssistantName string   `json:"assistant_name"`
	Version       string   `json:"version"`
	Platform      string   `json:"platform"`
	Annotator     string   `json:"annotator"`
	TTSEngine     string   `json:"tts_engine"`
	Features      []string `json:"features"`
	Intents       []string `json:"intents"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_command",
		Description: "Process a natural-language command and act on the detected intent",
	}, s.handleProcessCommand)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "speak",
		Description: "Speak text aloud through the local speech synthesizer",
	}, s.handleSpeak)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_status",
		Description: "Report assistant capabilities: annotator, speech engine, features, intents",
	}, s.handleGetStatus)
}

// handleProcessCommand handles the process_command tool invocation.
func (s *Server) handleProcessCommand(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommandInput,
) (*mcp.CallToolResult, CommandOutput, error) {
	action, result, err := s.ports.Assistant.ProcessCommand(ctx, input.Command)
	if err != nil {
		return nil, CommandOutput{}, err
	}

	output := CommandOutput{
		Success: action.Success,
		Message: action.Message,
	}
	if result != nil {
		output.Intent = result.Intent
		output.Confidence = result.Confidence
		output.Entities = result.Entities
		output.Context = result.Context
	}

	return nil, output, nil
}

// handleSpeak handles the speak tool invocation.
func (s *Server) handleSpeak(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SpeakInput,
) (*mcp.CallToolResult, SpeakOutput, error) {
	if err := s.ports.Assistant.Speak(ctx, input.Text); err != nil {
		return nil, SpeakOutput{}, err
	}
	return nil, SpeakOutput{Spoken: true}, nil
}

// handleGetStatus handles the get_status tool invocation.
func (s *Server) handleGetStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	status := s.ports.Assistant.Status(ctx)

	features := make([]string, 0, len(status.Features))
	for name, enabled := range status.Features {
		if enabled {
			features = append(features, name)
		}
	}
	sort.Strings(features)

	return nil, StatusOutput{
		AssistantName: status.AssistantName,
		Version:       status.Version,
		Platform:      status.Platform,
		Annotator:     status.Annotator,
		TTSEngine:     status.TTSEngine,
		Features:      features,
		Intents:       status.Intents,
	}, nil
}
