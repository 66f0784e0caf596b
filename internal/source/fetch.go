// Package source provides the CSV text the pipeline ingests: a fetcher
// for the published-spreadsheet export, a local-file source with change
// watching, and the fixed sample dataset used as a fallback.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrRestricted means the export URL answered with a sign-in or
// permission page instead of CSV. Distinct from a transport failure:
// the sheet exists but is not published to the web.
var ErrRestricted = errors.New("spreadsheet is restricted: publish it to the web (File > Share > Publish to web)")

// StatusError is a non-success HTTP status from the export URL.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d from spreadsheet export", e.Code)
}

// restrictedMarkers are body fragments that identify a Google sign-in or
// permission-denied page served where CSV was expected.
var restrictedMarkers = []string{
	" precisa de permissão",
	"restricted",
	"Sign in",
	"Não foi possível abrir",
}

// SheetFetcher downloads the published CSV export of a spreadsheet.
type SheetFetcher struct {
	url    string
	client *http.Client
}

// NewSheetFetcher creates a fetcher for the given export URL.
func NewSheetFetcher(url string) *SheetFetcher {
	return &SheetFetcher{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// Fetch downloads the CSV text. It returns a *StatusError for a
// non-success status and ErrRestricted when the body is a sign-in or
// permission page rather than CSV.
func (f *SheetFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	text := string(body)
	if Restricted(text) {
		return "", ErrRestricted
	}
	return text, nil
}

// Restricted reports whether a response body looks like a sign-in or
// permission-denied page instead of CSV data.
func Restricted(body string) bool {
	for _, marker := range restrictedMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return strings.Contains(body, "<html") && strings.Contains(body, "accounts.google.com")
}
