package ports

import "context"

// ResponseCache holds raw GET response bodies keyed by absolute request URL.
//
// Implementations must be safe for concurrent use. There is no per-key invalidation: callers
// that change upstream state call Clear.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
	Clear(ctx context.Context) error
	Len(ctx context.Context) (int, error)
}
