package transport

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSTransport sends queries as NATS request-reply messages (spec §6.2's
// reference transport is a single request/single reply exchange, which
// nats.Conn.RequestWithContext models directly).
type NATSTransport struct {
	conn    *nats.Conn
	subject string
}

// DialNATS connects to a NATS server and binds to subject, the name the
// document server listens on for queries.
func DialNATS(url, subject string, opts ...nats.Option) (*NATSTransport, error) {
	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	return &NATSTransport{conn: conn, subject: subject}, nil
}

func (t *NATSTransport) RoundTrip(ctx context.Context, query string) (string, error) {
	msg, err := t.conn.RequestWithContext(ctx, t.subject, []byte(query))
	if err != nil {
		return "", fmt.Errorf("transport: request on %s: %w", t.subject, err)
	}
	return string(msg.Data), nil
}

func (t *NATSTransport) Close() error {
	t.conn.Close()
	return nil
}
