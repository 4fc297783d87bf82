package download

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// UE4SS release constants
const (
	// PinnedUE4SSURL is the known-good experimental build installed by default.
	PinnedUE4SSURL = "https://github.com/UE4SS-RE/RE-UE4SS/releases/download/experimental-latest/zDEV-UE4SS_v3.0.1-394-g437a8ff.zip"

	// LatestReleaseAPIURL is the GitHub Releases endpoint used by --latest.
	LatestReleaseAPIURL = "https://api.github.com/repos/UE4SS-RE/RE-UE4SS/releases/latest"

	// DevAssetPrefix matches the zDEV development archive among release assets.
	DevAssetPrefix = "zDEV-UE4SS"

	ResolverTimeout = 10 * time.Second
)

// releaseResponse represents the GitHub Releases API JSON response.
type releaseResponse struct {
	TagName     string          `json:"tag_name"`
	PublishedAt time.Time       `json:"published_at"`
	Assets      []assetResponse `json:"assets"`
}

// assetResponse represents a single release asset.
type assetResponse struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// ReleaseAsset is a resolved downloadable release archive.
type ReleaseAsset struct {
	Tag  string
	Name string
	URL  string
}

// Resolver queries the GitHub Releases API for the newest UE4SS archive.
type Resolver struct {
	apiURL string
	client *http.Client
}

// NewResolver creates a Resolver against the given API URL. For testing,
// pass an httptest.Server URL directly.
func NewResolver(apiURL string, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: ResolverTimeout}
	}
	return &Resolver{apiURL: apiURL, client: client}
}

// LatestAsset fetches the latest release and picks the zDEV development
// archive, falling back to the first zip asset.
func (r *Resolver) LatestAsset(ctx context.Context) (*ReleaseAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("resolver: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolver: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("resolver: release not found (status 404)")
		}
		return nil, fmt.Errorf("resolver: unexpected status %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("resolver: decode response: %w", err)
	}

	asset := pickAsset(release.Assets)
	if asset == nil {
		return nil, fmt.Errorf("resolver: no zip asset in release %s", release.TagName)
	}

	return &ReleaseAsset{
		Tag:  release.TagName,
		Name: asset.Name,
		URL:  asset.BrowserDownloadURL,
	}, nil
}

// pickAsset prefers the zDEV archive, then any zip.
func pickAsset(assets []assetResponse) *assetResponse {
	for i := range assets {
		if strings.HasPrefix(assets[i].Name, DevAssetPrefix) && strings.HasSuffix(assets[i].Name, ".zip") {
			return &assets[i]
		}
	}
	for i := range assets {
		if strings.HasSuffix(assets[i].Name, ".zip") {
			return &assets[i]
		}
	}
	return nil
}
