package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore over a plain map.
type mockConfigStore struct {
	data    map[string]any
	setErr  error
	loadErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.data[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	switch v := m.data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.data[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Load() error {
	return m.loadErr
}

func TestSettingsGet_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	got := svc.Get()

	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsGet_Overrides(t *testing.T) {
	store := newMockConfigStore()
	store.data["assistant_name"] = "jarvis"
	store.data["context_window"] = 10
	store.data["annotator.mode"] = "basic"
	store.data["tts.enabled"] = false
	store.data["tts.voice"] = "daniel"
	store.data["tts.rate"] = 1.5
	store.data["features.weather"] = true
	store.data["keys.openweathermap"] = "owm-key"
	store.data["server.port"] = 9000

	got := NewSettingsService(store).Get()

	assert.Equal(t, "jarvis", got.AssistantName)
	assert.Equal(t, 10, got.ContextWindow)
	assert.Equal(t, "basic", got.AnnotatorMode)
	assert.False(t, got.TTS.Enabled)
	assert.Equal(t, "daniel", got.TTS.Voice)
	assert.Equal(t, 1.5, got.TTS.Rate)
	assert.True(t, got.Features.Weather)
	assert.False(t, got.Features.News)
	assert.Equal(t, "owm-key", got.Keys.OpenWeatherMap)
	assert.Equal(t, 9000, got.Server.Port)
}

func TestSettingsGet_InvalidValuesFallBack(t *testing.T) {
	store := newMockConfigStore()
	store.data["annotator.mode"] = "turbo"
	store.data["context_window"] = -3
	store.data["tts.rate"] = 0.0

	got := NewSettingsService(store).Get()
	defaults := domain.DefaultSettings()

	assert.Equal(t, defaults.AnnotatorMode, got.AnnotatorMode)
	assert.Equal(t, defaults.ContextWindow, got.ContextWindow)
	assert.Equal(t, defaults.TTS.Rate, got.TTS.Rate)
}

func TestSettingsSave_RoundTrip(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	settings := domain.DefaultSettings()
	settings.AssistantName = "jarvis"
	settings.Features.News = true
	settings.Keys.NewsAPI = "news-key"

	require.NoError(t, svc.Save(settings))

	assert.Equal(t, settings, svc.Get())
}
