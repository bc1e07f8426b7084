// Package null provides a pass-through face authenticator for setups
// without a camera or with recognition disabled.
package null

import (
	"context"

	"github.com/prime-labs/prime-cli/internal/core/domain"
	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
)

// Ensure Authenticator implements the interface.
var _ driven.FaceAuthenticator = (*Authenticator)(nil)

// Authenticator accepts every authentication attempt. The assistant
// stays usable on hardware where camera-based recognition cannot run.
type Authenticator struct {
	userName string
}

// New creates an authenticator that always recognises the given user.
func New(userName string) *Authenticator {
	return &Authenticator{userName: userName}
}

// Authenticate reports success without any capture.
func (a *Authenticator) Authenticate(_ context.Context) (domain.AuthResult, error) {
	return domain.AuthResult{
		Authenticated: true,
		UserName:      a.userName,
		Confidence:    1.0,
	}, nil
}
