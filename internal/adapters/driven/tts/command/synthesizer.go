// Package command speaks through the host's text-to-speech command:
// say on macOS, espeak on Linux and PowerShell's speech synthesizer on
// Windows.
package command

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Synthesizer implements the interface.
var _ driven.Synthesizer = (*Synthesizer)(nil)

// Synthesizer shells out to the platform speech command. Each Speak
// call runs one process and blocks until playback finishes or the
// context is cancelled.
type Synthesizer struct {
	voice string
	rate  float64
}

// New creates a synthesizer for the current platform. It fails when no
// speech command is installed, letting the caller degrade to the null
// engine.
func New(settings domain.TTSSettings) (*Synthesizer, error) {
	if _, err := exec.LookPath(binaryName()); err != nil {
		return nil, fmt.Errorf("speech command not found: %w", err)
	}
	rate := settings.Rate
	if rate <= 0 {
		rate = 1.0
	}
	return &Synthesizer{voice: settings.Voice, rate: rate}, nil
}

// Speak renders the text through the platform command.
func (s *Synthesizer) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	cmd := s.command(ctx, text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech synthesis: %w", err)
	}
	return nil
}

// Voices lists the configured voice, when one is set. Enumerating the
// installed voices would need engine-specific parsing per platform.
func (s *Synthesizer) Voices() []string {
	if s.voice == "" {
		return nil
	}
	return []string{s.voice}
}

// Name identifies the engine for status reporting.
func (s *Synthesizer) Name() string {
	return binaryName()
}

func (s *Synthesizer) command(ctx context.Context, text string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		args := []string{}
		if s.voice != "" {
			args = append(args, "-v", s.voice)
		}
		// say takes words per minute; 200 is the default speaking rate.
		args = append(args, "-r", strconv.Itoa(int(s.rate*200)), text)
		return exec.CommandContext(ctx, "say", args...)
	case "windows":
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Rate = %d; $s.Speak(%s)",
			rateToWindows(s.rate), powershellQuote(text))
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script)
	default:
		args := []string{}
		if s.voice != "" {
			args = append(args, "-v", s.voice)
		}
		// espeak takes words per minute; 175 is its default.
		args = append(args, "-s", strconv.Itoa(int(s.rate*175)), text)
		return exec.CommandContext(ctx, "espeak", args...)
	}
}

func binaryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "say"
	case "windows":
		return "powershell"
	default:
		return "espeak"
	}
}

// rateToWindows maps a speed multiplier onto the SpeechSynthesizer
// -10..10 rate scale, 0 being normal speed.
func rateToWindows(rate float64) int {
	r := int((rate - 1.0) * 10)
	if r < -10 {
		r = -10
	}
	if r > 10 {
		r = 10
	}
	return r
}

// powershellQuote single-quotes text for embedding in a PowerShell
// command, doubling embedded quotes.
func powershellQuote(text string) string {
	quoted := make([]rune, 0, len(text)+2)
	quoted = append(quoted, '\'')
	for _, r := range text {
		if r == '\'' {
			quoted = append(quoted, '\'', '\'')
			continue
		}
		quoted = append(quoted, r)
	}
	return string(append(quoted, '\''))
}
