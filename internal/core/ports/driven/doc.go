// Package driven defines the interfaces the core requires from the
// outside world: annotation, speech synthesis, application launching,
// face authentication, information providers, and persistence. Adapters
// implement these; the core only ever sees the interfaces.
package driven
