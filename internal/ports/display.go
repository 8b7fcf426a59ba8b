package ports

import "context"

// Display is the full-screen clock surface.
// This is a driving port (called by the command layer).
type Display interface {
	// Run takes over the terminal and blocks until the user quits, the
	// context is cancelled, or rendering fails. The terminal is restored
	// before Run returns on every path.
	Run(ctx context.Context) error
}
