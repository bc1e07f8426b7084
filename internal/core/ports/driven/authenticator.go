package driven

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
)

// FaceAuthenticator verifies the user before the assistant unlocks.
// Camera capture and template storage live entirely behind this
// interface; the core only consumes the outcome.
type FaceAuthenticator interface {
	// Authenticate attempts to recognise the user. A failed recognition
	// is reported in the result, not as an error; errors mean the
	// authenticator itself could not run.
	Authenticate(ctx context.Context) (domain.AuthResult, error)
}
