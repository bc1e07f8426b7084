// Package driving defines the interfaces through which external actors
// (CLI, web UI, MCP clients) drive the assistant core.
package driving
