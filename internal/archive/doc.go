// Package archive implements zip extraction for runtime and mod installs:
// entry path sanitization, optional top-level folder filtering, and per-entry
// progress reporting.
package archive
