// Package platform opens applications and URLs through OS-specific
// commands.
package platform

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/prime-labs/prime-cli/internal/core/ports/driven"
	"github.com/prime-labs/prime-cli/internal/logger"
)

// Ensure Launcher implements the interface.
var _ driven.Launcher = (*Launcher)(nil)

// Launcher starts applications and opens URLs on the host. Spoken app
// names resolve through a per-platform alias table before being handed
// to the OS launcher.
type Launcher struct{}

// New creates a launcher for the current platform.
func New() *Launcher {
	return &Launcher{}
}

// appAliases maps spoken application names to per-platform targets.
// Names missing from the table pass through unchanged.
var appAliases = map[string]map[string]string{
	"darwin": {
		"chrome":     "Google Chrome",
		"browser":    "Safari",
		"terminal":   "Terminal",
		"calculator": "Calculator",
		"notepad":    "TextEdit",
		"finder":     "Finder",
		"music":      "Music",
	},
	"linux": {
		"chrome":     "google-chrome",
		"browser":    "firefox",
		"terminal":   "x-terminal-emulator",
		"calculator": "gnome-calculator",
		"notepad":    "gedit",
		"files":      "nautilus",
	},
	"windows": {
		"chrome":     "chrome",
		"browser":    "msedge",
		"terminal":   "cmd",
		"calculator": "calc",
		"notepad":    "notepad",
		"explorer":   "explorer",
	},
}

// OpenApp starts the named application. The name is matched
// case-insensitively against the alias table for the current platform.
func (l *Launcher) OpenApp(ctx context.Context, name string) error {
	target := resolveApp(runtime.GOOS, name)
	logger.Debug("Launching %q (resolved from %q)", target, name)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", "-a", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", target)
	default:
		if _, err := exec.LookPath(target); err != nil {
			return fmt.Errorf("application %q not found: %w", name, err)
		}
		cmd = exec.CommandContext(ctx, target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %q: %w", name, err)
	}
	// The application outlives us; don't wait for it.
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenURL opens the URL in the default browser.
func (l *Launcher) OpenURL(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// resolveApp maps a spoken name to the platform launch target.
func resolveApp(goos, name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if aliases, ok := appAliases[goos]; ok {
		if target, ok := aliases[key]; ok {
			return target
		}
	}
	return key
}
