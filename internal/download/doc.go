// Package download implements the HTTP side of runtime installs: fetching
// release archives with progress reporting and resolving the newest UE4SS
// release asset through the GitHub Releases API.
package download
