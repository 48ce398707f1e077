package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/summitops/regdesk/internal/core"
)

// HTTP dereferences direct URL references, for deployments whose form
// stores attachment links to an external file host. It carries no folder
// index, so derived-filename search is not supported here.
type HTTP struct {
	client *http.Client
}

// NewHTTP creates an HTTP-backed store with the given per-fetch timeout.
func NewHTTP(timeout time.Duration) *HTTP {
	return &HTTP{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch GETs the referenced URL. A 404 from the host is a missing
// attachment; any other non-2xx status is an upstream failure, which the
// caller must keep distinct from "record not found".
func (s *HTTP) Fetch(ctx context.Context, direct string) (*Object, error) {
	u, err := url.Parse(direct)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: not a fetchable reference: %q", core.ErrNotFound, direct)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, direct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", core.ErrUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", core.ErrUpstream, u.Host, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: attachment host returned 404", core.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: attachment host returned %d", core.ErrUpstream, resp.StatusCode)
	}

	return &Object{
		Body:        resp.Body,
		ContentType: contentTypeFor(resp.Header.Get("Content-Type"), u.Path),
		Name:        path.Base(u.Path),
	}, nil
}

// Search is unsupported for URL-backed attachments: there is no folder to
// scan. Resolvers that produced a derived-filename query against this store
// get a clean miss rather than an error.
func (s *HTTP) Search(ctx context.Context, q core.FetchQuery) (*Object, error) {
	return nil, fmt.Errorf("%w: derived-filename search not supported by the http store", core.ErrNotFound)
}
