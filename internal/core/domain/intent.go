package domain

import (
	"fmt"
	"regexp"
)

// Intent name constants. The catalog ships exactly these eight intents;
// adding or removing one means redeploying the catalog, there is no
// runtime mutation API.
const (
	IntentOpenApp     = "open_app"
	IntentPlayYouTube = "play_youtube"
	IntentSendMessage = "send_message"
	IntentMakeCall    = "make_call"
	IntentGetWeather  = "get_weather"
	IntentGetNews     = "get_news"
	IntentSetReminder = "set_reminder"
	IntentGeneralChat = "general_chat"

	// IntentUnknown is the sentinel returned when no intent clears its
	// threshold. It never appears in the catalog itself.
	IntentUnknown = "unknown"
)

// IntentDefinition describes one intent in the catalog: how to recognise
// it and which slots it fills. Immutable after load.
type IntentDefinition struct {
	// Name is the unique intent identifier.
	Name string

	// Patterns are the compiled case-insensitive match patterns.
	// Patterns are independent: each one that matches contributes to the
	// score, they are not mutually exclusive.
	Patterns []*regexp.Regexp

	// Entities lists the slot names this intent fills, in order.
	// May be empty (general_chat has no slots).
	Entities []string

	// Keywords is the hand-authored keyword list used by the keyword
	// scoring component. Disjoint concern from Patterns.
	Keywords []string

	// Threshold is the minimum confidence in [0,1] for this intent to be
	// selected.
	Threshold float64
}

// Validate checks catalog-entry integrity. Called once at startup;
// a failure here aborts, it is never a per-query condition.
func (d *IntentDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: intent with empty name", ErrInvalidCatalog)
	}
	if len(d.Patterns) == 0 {
		return fmt.Errorf("%w: intent %q has no patterns", ErrInvalidCatalog, d.Name)
	}
	for i, p := range d.Patterns {
		if p == nil {
			return fmt.Errorf("%w: intent %q pattern %d is nil", ErrInvalidCatalog, d.Name, i)
		}
	}
	if d.Threshold < 0 || d.Threshold > 1 {
		return fmt.Errorf("%w: intent %q threshold %v outside [0,1]", ErrInvalidCatalog, d.Name, d.Threshold)
	}
	return nil
}

// IntentMatch is the outcome of intent selection for one query.
type IntentMatch struct {
	// Intent is the selected intent name, or "unknown".
	Intent string

	// Confidence is the winning score in [0,1]. Zero when unknown.
	Confidence float64
}
