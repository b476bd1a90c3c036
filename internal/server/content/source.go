// Package content resolves template and static asset names (index.html,
// style.css, profile.jpg) to their raw bytes. Backends: GitHub raw content
// and S3-compatible object storage.
package content

import "context"

// Source fetches the raw content stored under a file name. Content is
// read-only and fetched fresh on every call.
type Source interface {
	Get(ctx context.Context, name string) ([]byte, error)
}
