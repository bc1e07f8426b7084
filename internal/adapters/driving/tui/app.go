// Package tui provides an interactive chat terminal UI for the
// assistant, following the Elm architecture.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prime-labs/prime-cli/internal/core/ports/driving"
)

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("tui: assistant service is required")

// maxTranscript bounds the kept transcript lines.
const maxTranscript = 200

// turnCompleted carries the outcome of one processed command.
type turnCompleted struct {
	query      string
	message    string
	intent     string
	confidence float64
	err        error
}

// App is the chat TUI application. It implements tea.Model.
type App struct {
	assistant driving.AssistantService
	ctx       context.Context
	styles    *Styles

	input      textinput.Model
	transcript []string
	processing bool

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat application.
func NewApp(assistant driving.AssistantService) (*App, error) {
	if assistant == nil {
		return nil, ErrMissingAssistantService
	}

	input := textinput.New()
	input.Placeholder = "Type a command, e.g. \"open chrome\""
	input.Focus()
	input.CharLimit = 500

	return &App{
		assistant: assistant,
		ctx:       context.Background(),
		styles:    DefaultStyles(),
		input:     input,
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context used for command processing.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 6
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(a.input.Value())
			if query == "" || a.processing {
				return a, nil
			}
			a.appendLine(a.styles.User.Render("you: " + query))
			a.input.Reset()
			a.processing = true
			return a, a.processCommand(query)
		}

	case turnCompleted:
		a.processing = false
		a.handleTurn(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the chat transcript and prompt.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("prime"))
	b.WriteString(a.styles.Muted.Render("  chat · enter sends · esc quits"))
	b.WriteString("\n\n")

	// Keep the transcript within the space above the prompt.
	visible := a.transcript
	if avail := a.height - 6; avail > 0 && len(visible) > avail {
		visible = visible[len(visible)-avail:]
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.processing {
		b.WriteString(a.styles.Muted.Render("thinking..."))
		b.WriteString("\n")
	}
	b.WriteString(a.styles.InputField.Render(a.input.View()))

	return b.String()
}

// processCommand runs one command through the assistant.
func (a *App) processCommand(query string) tea.Cmd {
	return func() tea.Msg {
		action, result, err := a.assistant.ProcessCommand(a.ctx, query)
		if err != nil {
			return turnCompleted{query: query, err: err}
		}
		msg := turnCompleted{query: query, message: action.Message}
		if result != nil {
			msg.intent = result.Intent
			msg.confidence = result.Confidence
		}
		return msg
	}
}

func (a *App) handleTurn(msg turnCompleted) {
	if msg.err != nil {
		a.appendLine(a.styles.Error.Render("error: " + msg.err.Error()))
		return
	}

	a.appendLine(a.styles.Assistant.Render("prime: " + msg.message))
	if msg.intent != "" {
		annotation := fmt.Sprintf("(%s, %.2f)", msg.intent, msg.confidence)
		a.appendLine(a.styles.Muted.Render("       " + annotation))
	}
}

func (a *App) appendLine(line string) {
	a.transcript = append(a.transcript, line)
	if len(a.transcript) > maxTranscript {
		a.transcript = a.transcript[len(a.transcript)-maxTranscript:]
	}
}
