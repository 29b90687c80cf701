// Package transport carries a single query string to the server and
// returns its single reply string. The driver's pipeline is always one
// query in flight at a time (spec §6.2), so the interface is a plain
// request/reply round trip rather than a stream.
package transport

import "context"

// Transport sends a query and waits for its reply.
type Transport interface {
	RoundTrip(ctx context.Context, query string) (string, error)
	Close() error
}
