package domain

// Settings holds the assistant configuration, loaded from the config
// store at startup. The zero value is unusable; use DefaultSettings.
type Settings struct {
	// AssistantName is the name the assistant introduces itself with.
	AssistantName string

	// ContextWindow is the context buffer capacity.
	ContextWindow int

	// AnnotatorMode selects the annotator: "auto" picks the linguistic
	// model when it loads and degrades to "basic" otherwise; "basic"
	// forces the fallback.
	AnnotatorMode string

	// TTS configures speech synthesis.
	TTS TTSSettings

	// Features toggles optional capabilities.
	Features FeatureFlags

	// Keys holds API keys for information providers.
	Keys APIKeys

	// Server configures the local web UI server.
	Server ServerSettings
}

// TTSSettings configures the speech synthesis adapter.
type TTSSettings struct {
	// Enabled switches spoken replies on or off.
	Enabled bool

	// Voice is the engine-specific voice identifier.
	Voice string

	// Rate is the speech rate multiplier.
	Rate float64
}

// FeatureFlags toggles optional assistant capabilities.
type FeatureFlags struct {
	Weather bool
	News    bool
}

// APIKeys holds credentials for external information providers.
// Empty keys leave the corresponding provider unconfigured.
type APIKeys struct {
	OpenWeatherMap string
	NewsAPI        string
}

// ServerSettings configures the local web UI server.
// The server only ever binds loopback.
type ServerSettings struct {
	// Port to listen on. Zero picks a free port.
	Port int
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		AssistantName: "prime",
		ContextWindow: DefaultContextWindow,
		AnnotatorMode: "auto",
		TTS: TTSSettings{
			Enabled: true,
			Rate:    1.0,
		},
		Features: FeatureFlags{
			Weather: false,
			News:    false,
		},
		Server: ServerSettings{
			Port: 8000,
		},
	}
}

// Status is the system status surface reported to the UI.
type Status struct {
	// AssistantName is the configured assistant name.
	AssistantName string `json:"assistant_name"`

	// Version is the build version.
	Version string `json:"version"`

	// Platform describes the host OS.
	Platform string `json:"platform"`

	// Annotator names the active annotator implementation.
	Annotator string `json:"annotator"`

	// TTSEngine names the active speech synthesis engine.
	TTSEngine string `json:"tts_engine"`

	// Voices lists the available synthesis voices.
	Voices []string `json:"voices,omitempty"`

	// Features reports which optional capabilities are enabled.
	Features map[string]bool `json:"features"`

	// Intents lists the catalog intent names, in catalog order.
	Intents []string `json:"intents"`
}
