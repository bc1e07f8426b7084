// Package null provides a silent speech synthesizer for headless
// environments and for running with TTS disabled.
package null

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Synthesizer implements the interface.
var _ driven.Synthesizer = (*Synthesizer)(nil)

// Synthesizer accepts every Speak call and produces no sound.
type Synthesizer struct{}

// New creates a silent synthesizer.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Speak discards the text.
func (s *Synthesizer) Speak(_ context.Context, _ string) error {
	return nil
}

// Voices returns no voices.
func (s *Synthesizer) Voices() []string {
	return nil
}

// Name identifies the engine for status reporting.
func (s *Synthesizer) Name() string {
	return "null"
}
