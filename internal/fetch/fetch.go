// Package fetch retrieves agent artifacts over HTTPS into the install root.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/SevinEW/monitorMoon/internal/fsutil"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/status"
)

const fetchRetryCount = 1

var retryDelay = 500 * time.Millisecond

// ArtifactError reports a named artifact that could not be retrieved.
type ArtifactError struct {
	Name string
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Errorf(messages.FetchTransferErrFmt, e.Name, e.Err).Error()
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// Fetcher downloads artifacts by stable relative name from a fixed base URL.
type Fetcher struct {
	client  *http.Client
	baseURL string
	report  *status.Reporter
}

// New returns a Fetcher for the given base URL.
func New(baseURL string, report *status.Reporter) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 60 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		report:  report,
	}
}

// FetchAll retrieves each named artifact into destDir, in order, overwriting
// any previous copy. Retrieval stops at the first artifact that fails; files
// fetched before the failure stay on disk since a re-run overwrites them.
func (f *Fetcher) FetchAll(ctx context.Context, destDir string, names []string) error {
	for _, name := range names {
		f.report.Info(messages.FetchDownloadingFmt, name)
		if err := f.fetch(ctx, destDir, name); err != nil {
			return &ArtifactError{Name: name, Err: err}
		}
	}
	return nil
}

// fetch downloads one artifact, retrying once on transient transport errors
// and 5xx responses. The file is written atomically so a failed transfer never
// leaves a truncated artifact behind.
func (f *Fetcher) fetch(ctx context.Context, destDir string, name string) error {
	url := f.baseURL + "/" + name
	var lastErr error
	for attempt := 0; attempt <= fetchRetryCount; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf(messages.FetchRequestErrFmt, url, err)
		}
		req.Header.Set("User-Agent", "moonctl")

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			if shouldRetry(err, 0, attempt) {
				continue
			}
			return err
		}

		if resp.StatusCode != http.StatusOK {
			statusText := resp.Status
			code := resp.StatusCode
			_ = resp.Body.Close()
			lastErr = fmt.Errorf(messages.FetchBadStatusFmt, url, statusText)
			if shouldRetry(nil, code, attempt) {
				continue
			}
			return lastErr
		}

		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			if shouldRetry(err, 0, attempt) {
				continue
			}
			return err
		}

		dest := filepath.Join(destDir, name)
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return fmt.Errorf(messages.FetchWriteErrFmt, name, dest, err)
		}
		return nil
	}
	if lastErr == nil {
		lastErr = errors.New(messages.FetchRetryBudgetUsed)
	}
	return lastErr
}

// shouldRetry mirrors the usual transient-failure heuristic: network errors
// and server-side statuses are retryable, cancellation and client errors are not.
func shouldRetry(err error, statusCode int, attempt int) bool {
	if attempt >= fetchRetryCount {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		if errors.As(err, &netErr) {
			return true
		}
		// http.Client wraps transport errors in *url.Error; treat them as transient.
		return strings.Contains(err.Error(), "connection")
	}
	return statusCode >= 500 && statusCode <= 599
}
