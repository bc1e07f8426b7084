package services

import (
	"fmt"
	"regexp"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// Catalog is the ordered, immutable set of intents the assistant
// recognises. Evaluation order matters: ties during selection keep the
// earlier intent, so the catalog is a slice, not a map.
type Catalog struct {
	defs  []domain.IntentDefinition
	index map[string]int
}

// NewCatalog builds a catalog from the given definitions, validating
// each entry. Order is preserved.
func NewCatalog(defs []domain.IntentDefinition) (*Catalog, error) {
	index := make(map[string]int, len(defs))
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := index[defs[i].Name]; dup {
			return nil, fmt.Errorf("%w: duplicate intent %q", domain.ErrInvalidCatalog, defs[i].Name)
		}
		index[defs[i].Name] = i
	}
	return &Catalog{defs: defs, index: index}, nil
}

// Definitions returns the intent definitions in catalog order.
// Callers must treat the returned slice as read-only.
func (c *Catalog) Definitions() []domain.IntentDefinition {
	return c.defs
}

// Get returns the definition for an intent name, or nil if unknown.
func (c *Catalog) Get(name string) *domain.IntentDefinition {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return &c.defs[i]
}

// Names returns the intent names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i := range c.defs {
		names[i] = c.defs[i].Name
	}
	return names
}

// Len returns the number of intents.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Selection thresholds. Single-pattern queries top out at 0.75 with the
// semantic term and 0.4-0.5 without it, so action intents sit at 0.4 to
// be reachable in both annotator modes. general_chat keeps the stricter
// 0.6 and relies on the semantic term.
const (
	actionThreshold = 0.4
	chatThreshold   = 0.6
)

// rx compiles a case-insensitive pattern. Panics on bad syntax, which is
// acceptable for the built-in catalog: it is exercised at startup and in
// tests, never from user input.
func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// DefaultCatalog returns the built-in eight-intent catalog. Loaded once
// at startup; changing it means redeploying, by design.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog([]domain.IntentDefinition{
		{
			Name: domain.IntentOpenApp,
			Patterns: []*regexp.Regexp{
				rx(`open\s+(\w+)`),
				rx(`launch\s+(\w+)`),
				rx(`start\s+(\w+)`),
				rx(`run\s+(\w+)`),
			},
			Entities:  []string{"app_name"},
			Keywords:  []string{"open", "launch", "start", "run", "app", "application"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentPlayYouTube,
			Patterns: []*regexp.Regexp{
				rx(`play\s+(.+?)\s+on\s+youtube`),
				rx(`youtube\s+(.+)`),
				rx(`search\s+(.+?)\s+on\s+youtube`),
			},
			Entities:  []string{"search_term"},
			Keywords:  []string{"play", "youtube", "video", "search", "watch"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentSendMessage,
			Patterns: []*regexp.Regexp{
				rx(`send\s+message\s+to\s+(\w+)`),
				rx(`text\s+(\w+)`),
				rx(`message\s+(\w+)`),
			},
			Entities:  []string{"contact_name"},
			Keywords:  []string{"send", "message", "text", "sms", "contact"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentMakeCall,
			Patterns: []*regexp.Regexp{
				rx(`call\s+(\w+)`),
				rx(`phone\s+call\s+to\s+(\w+)`),
				rx(`dial\s+(\w+)`),
			},
			Entities:  []string{"contact_name"},
			Keywords:  []string{"call", "phone", "dial", "ring", "contact"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentGetWeather,
			Patterns: []*regexp.Regexp{
				rx(`weather\s+(?:in\s+)?(.+)`),
				rx(`how\s+is\s+the\s+weather\s+(?:in\s+)?(.+)`),
				rx(`temperature\s+(?:in\s+)?(.+)`),
			},
			Entities:  []string{"location"},
			Keywords:  []string{"weather", "temperature", "forecast", "climate"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentGetNews,
			Patterns: []*regexp.Regexp{
				rx(`news\s+(?:about\s+)?(.+)`),
				rx(`latest\s+news\s+(?:about\s+)?(.+)`),
				rx(`what\s+is\s+happening\s+(?:with\s+)?(.+)`),
			},
			Entities:  []string{"topic"},
			Keywords:  []string{"news", "latest", "update", "happening", "current"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentSetReminder,
			Patterns: []*regexp.Regexp{
				rx(`remind\s+me\s+to\s+(.+?)\s+(?:at\s+)?(.+)`),
				rx(`set\s+reminder\s+for\s+(.+?)\s+(?:at\s+)?(.+)`),
				rx(`reminder\s+(.+?)\s+(?:at\s+)?(.+)`),
			},
			Entities:  []string{"task", "time"},
			Keywords:  []string{"remind", "reminder", "alarm", "schedule", "time"},
			Threshold: actionThreshold,
		},
		{
			Name: domain.IntentGeneralChat,
			Patterns: []*regexp.Regexp{
				rx(`how\s+are\s+you`),
				rx(`what\s+can\s+you\s+do`),
				rx(`tell\s+me\s+a\s+joke`),
				rx(`what\s+time\s+is\s+it`),
			},
			Entities:  nil,
			Keywords:  []string{"how", "what", "when", "where", "why", "joke", "time"},
			Threshold: chatThreshold,
		},
	})
	if err != nil {
		// The built-in catalog is covered by tests; reaching this is a
		// programming error.
		panic(err)
	}
	return catalog
}
