// Package install orchestrates runtime and mod installs. It owns the task
// lifecycle: one background goroutine per install, progress propagation to
// the UI, stop requests, and cleanup of partial downloads.
package install
