package driven

import "context"

// Synthesizer speaks text aloud. Synthesis is best-effort: the
// dispatcher logs failures and carries on, a silent assistant still
// answers in text.
type Synthesizer interface {
	// Speak renders the text as speech and blocks until playback ends
	// or the context is cancelled.
	Speak(ctx context.Context, text string) error

	// Voices lists the voice identifiers the engine offers.
	Voices() []string

	// Name identifies the engine for status reporting.
	Name() string
}
