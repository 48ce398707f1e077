// Package store provides the attachment document stores the transport layer
// dereferences attachment references against. A Store performs the actual
// network access the core attachment resolver deliberately avoids.
//
// Callers must Close the returned Object on every exit path; the fetch
// handle wraps the underlying body or connection.
package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/summitops/regdesk/internal/config"
	"github.com/summitops/regdesk/internal/core"
)

// Object is one fetched attachment. Body must be closed by the caller.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Name        string
}

// Close releases the fetch handle.
func (o *Object) Close() error {
	if o == nil || o.Body == nil {
		return nil
	}
	return o.Body.Close()
}

// Store dereferences attachment references. Fetch handles direct references
// (URLs or object keys); Search runs a typed derived-filename query against
// a foldered store. Both return core.ErrNotFound for absent objects and
// core.ErrUpstream for transport failures, so the web layer can keep
// "missing attachment" and "store is down" as distinct outcomes.
type Store interface {
	Fetch(ctx context.Context, direct string) (*Object, error)
	Search(ctx context.Context, q core.FetchQuery) (*Object, error)
}

// New selects a store implementation from configuration.
func New(cfg config.StoreConfig) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "s3":
		return NewS3(cfg.Bucket, cfg.Region, cfg.Prefix)
	case "http":
		return NewHTTP(cfg.FetchTimeout), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
