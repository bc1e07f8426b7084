package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCatalog indicates a malformed intent catalog entry.
	// This is a startup-time integrity failure, never a per-query condition.
	ErrInvalidCatalog = errors.New("invalid intent catalog")

	// ErrFeatureDisabled indicates a feature is switched off in settings.
	// Handlers depending on it respond with a capability message instead.
	ErrFeatureDisabled = errors.New("feature disabled")

	// ErrSynthesizerUnavailable indicates no speech synthesis engine is
	// configured. Replies are still produced as text.
	ErrSynthesizerUnavailable = errors.New("speech synthesizer unavailable")

	// ErrAnnotatorUnavailable indicates the linguistic model failed to load.
	// The pipeline degrades to the basic annotator instead of surfacing this.
	ErrAnnotatorUnavailable = errors.New("annotator unavailable")

	// ErrProviderUnavailable indicates an information provider (weather,
	// news) is not configured, usually because its API key is missing.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrAuthFailed indicates face authentication did not succeed.
	ErrAuthFailed = errors.New("authentication failed")
)
