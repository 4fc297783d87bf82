package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/unniemods/unnie-mod-manager/internal/applog"
)

// Download behavior constants
const (
	DefaultTimeout = 10 * time.Minute
	RetryBackoff   = 2 * time.Second
	MaxRetries     = 1

	TempFilePattern = "unnie-mod-manager-*.zip"
	UserAgent       = "unnie-mod-manager"
)

// ProgressFunc receives download progress. total is -1 when the server did
// not report a content length.
type ProgressFunc func(done, total int64)

// Fetcher defines the interface for the archive fetch service.
type Fetcher interface {
	FetchArchive(ctx context.Context, url string, progress ProgressFunc) (string, error)
}

// Service downloads release archives over HTTP
type Service struct {
	client *http.Client
}

// NewService creates a new download service. A nil client gets a default
// with a generous timeout for large release archives.
func NewService(client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Service{client: client}
}

// FetchArchive downloads the archive at url into a temporary file and returns
// its path. The caller owns the file and removes it when done. A failed
// attempt is retried once after a short backoff.
func (s *Service) FetchArchive(ctx context.Context, url string, progress ProgressFunc) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(RetryBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			applog.Debug("retrying download", "url", url, "attempt", attempt+1)
		}

		path, err := s.fetchOnce(ctx, url, progress)
		if err == nil {
			return path, nil
		}

		lastErr = err
		applog.Debug("download attempt failed", "url", url, "attempt", attempt+1, "err", err)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", lastErr
}

// fetchOnce performs a single download attempt into a fresh temp file.
func (s *Service) fetchOnce(ctx context.Context, url string, progress ProgressFunc) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", TempFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	total := resp.ContentLength
	reader := &progressReader{reader: resp.Body, total: total, progress: progress}

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write archive: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tmp.Name(), nil
}

// progressReader wraps a response body and reports cumulative progress.
type progressReader struct {
	reader   io.Reader
	done     int64
	total    int64
	progress ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.done += int64(n)
		if pr.progress != nil {
			pr.progress(pr.done, pr.total)
		}
	}
	return n, err
}
