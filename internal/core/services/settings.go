package services

import (
	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAssistantName  = "assistant_name"
	keyContextWindow  = "context_window"
	keyAnnotatorMode  = "annotator.mode"
	keyTTSEnabled     = "tts.enabled"
	keyTTSVoice       = "tts.voice"
	keyTTSRate        = "tts.rate"
	keyFeatureWeather = "features.weather"
	keyFeatureNews    = "features.news"
	keyWeatherAPIKey  = "keys.openweathermap"
	keyNewsAPIKey     = "keys.newsapi"
	keyServerPort     = "server.port"
)

// SettingsService reads and writes the assistant configuration through
// the config store. Missing keys take their defaults, so a partial or
// absent config file is always usable.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, filling gaps from defaults.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		AssistantName: s.getString(keyAssistantName, defaults.AssistantName),
		ContextWindow: s.getInt(keyContextWindow, defaults.ContextWindow),
		AnnotatorMode: s.getAnnotatorMode(defaults.AnnotatorMode),
		TTS: domain.TTSSettings{
			Enabled: s.getBool(keyTTSEnabled, defaults.TTS.Enabled),
			Voice:   s.configStore.GetString(keyTTSVoice),
			Rate:    s.getFloat(keyTTSRate, defaults.TTS.Rate),
		},
		Features: domain.FeatureFlags{
			Weather: s.getBool(keyFeatureWeather, defaults.Features.Weather),
			News:    s.getBool(keyFeatureNews, defaults.Features.News),
		},
		Keys: domain.APIKeys{
			OpenWeatherMap: s.configStore.GetString(keyWeatherAPIKey),
			NewsAPI:        s.configStore.GetString(keyNewsAPIKey),
		},
		Server: domain.ServerSettings{
			Port: s.getInt(keyServerPort, defaults.Server.Port),
		},
	}

	if settings.ContextWindow <= 0 {
		settings.ContextWindow = defaults.ContextWindow
	}
	if settings.TTS.Rate <= 0 {
		settings.TTS.Rate = defaults.TTS.Rate
	}

	return settings
}

// Save persists settings back to the config store.
func (s *SettingsService) Save(settings domain.Settings) error {
	pairs := []struct {
		key   string
		value any
	}{
		{keyAssistantName, settings.AssistantName},
		{keyContextWindow, settings.ContextWindow},
		{keyAnnotatorMode, settings.AnnotatorMode},
		{keyTTSEnabled, settings.TTS.Enabled},
		{keyTTSVoice, settings.TTS.Voice},
		{keyTTSRate, settings.TTS.Rate},
		{keyFeatureWeather, settings.Features.Weather},
		{keyFeatureNews, settings.Features.News},
		{keyWeatherAPIKey, settings.Keys.OpenWeatherMap},
		{keyNewsAPIKey, settings.Keys.NewsAPI},
		{keyServerPort, settings.Server.Port},
	}

	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return fallback
}

func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key)
	}
	return fallback
}

// getAnnotatorMode validates the configured mode; anything other than
// the two known modes falls back to the default.
func (s *SettingsService) getAnnotatorMode(fallback string) string {
	switch mode := s.configStore.GetString(keyAnnotatorMode); mode {
	case "auto", "basic":
		return mode
	default:
		return fallback
	}
}
