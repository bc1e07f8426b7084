package driven

import "context"

// Launcher opens applications and URLs on the host system.
type Launcher interface {
	// OpenApp starts the named application. The name is the spoken form
	// ("chrome", "calculator"); the adapter resolves it per platform.
	OpenApp(ctx context.Context, name string) error

	// OpenURL opens the URL in the default browser.
	OpenURL(ctx context.Context, url string) error
}
