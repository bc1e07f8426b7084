// Package annotate selects the annotator implementation at startup.
// Selection happens exactly once; per-query code never branches on the
// active mode.
package annotate

import (
	"github.com/prime-labs/prime-cli/internal/adapters/driven/annotate/basic"
	"github.com/prime-labs/prime-cli/internal/adapters/driven/annotate/prose"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Select returns the annotator for the configured mode. "basic" forces
// the fallback; anything else tries the prose model first and degrades
// to the fallback with a warning when the model cannot be loaded.
// Degradation is transparent: both implementations satisfy the same
// contract.
func Select(mode string) driven.Annotator {
	if mode == "basic" {
		logger.Info("Annotator: basic (configured)")
		return basic.New()
	}

	annotator, err := prose.New()
	if err != nil {
		logger.Warn("Linguistic model unavailable, using basic annotation: %v", err)
		return basic.New()
	}

	logger.Info("Annotator: prose")
	return annotator
}
