package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for assistant resources.
	uriScheme = "prime://"

	// historyLimit bounds the conversation resource.
	historyLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reminders",
		Name:        "reminders",
		Description: "All stored reminders, newest first",
		MIMEType:    "application/json",
	}, s.handleRemindersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "conversation",
		Name:        "conversation",
		Description: "Recent conversation turns, newest first",
		MIMEType:    "application/json",
	}, s.handleConversationResource)
}

// handleRemindersResource returns all stored reminders.
func (s *Server) handleRemindersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Reminders == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	reminders, err := s.ports.Reminders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	type reminderInfo struct {
		ID   string `json:"id"`
		Task string `json:"task"`
		Time string `json:"time"`
		Done bool   `json:"done"`
	}

	infos := make([]reminderInfo, len(reminders))
	for i, r := range reminders {
		infos[i] = reminderInfo{
			ID:   r.ID,
			Task: r.Task,
			Time: r.Time,
			Done: r.Done,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reminders: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleConversationResource returns the most recent conversation turns.
func (s *Server) handleConversationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	turns, err := s.ports.History.Recent(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing turns: %w", err)
	}

	type turnInfo struct {
		Query      string  `json:"query"`
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
		Reply      string  `json:"reply"`
	}

	infos := make([]turnInfo, len(turns))
	for i := range turns {
		infos[i] = turnInfo{
			Query:      turns[i].Query,
			Intent:     turns[i].Intent,
			Confidence: turns[i].Confidence,
			Reply:      turns[i].Reply,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling turns: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func emptyJSONResource(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}
