package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sqldef/annadriver/query"
	"github.com/sqldef/annadriver/response"
	"github.com/sqldef/annadriver/transport"
)

var queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "annadriver",
	Name:      "query_duration_seconds",
	Help:      "Time spent waiting for a query round trip.",
}, []string{"collection", "ok"})

func init() {
	prometheus.MustRegister(queryDuration)
}

// Conn sends built Query pipelines over a Transport and decodes their
// replies into Journals. It does not pool or multiplex: the driver is
// single-query-in-flight per connection (spec §6.2 Non-goals). A Conn
// holds no lock and is not safe for concurrent use.
type Conn struct {
	transport transport.Transport
	logger    Logger
}

// NewConn wraps an already-dialed Transport. Pass NullLogger{} (the
// zero Logger) to send nothing to the log.
func NewConn(t transport.Transport, logger Logger) *Conn {
	if logger == nil {
		logger = NullLogger{}
	}
	return &Conn{transport: t, logger: logger}
}

// Query sends q and decodes its reply into a Journal. It is the
// convenience path over Send+response.Parse for callers that don't need
// the raw wire text.
func (c *Conn) Query(ctx context.Context, q *query.Query) (*response.Journal, error) {
	if err := q.Err(); err != nil {
		return nil, fmt.Errorf("driver: query not sendable: %w", err)
	}

	start := time.Now()
	raw, err := c.Send(ctx, q)
	ok := err == nil
	queryDuration.WithLabelValues(q.Collection(), fmt.Sprint(ok)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	j, err := response.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("driver: decode reply: %w", err)
	}
	return j, nil
}

// Send transmits q's wire text and returns the raw reply text, without
// decoding it.
func (c *Conn) Send(ctx context.Context, q *query.Query) (string, error) {
	wire := q.String()
	c.logger.Printf("> %s\n", wire)
	reply, err := c.transport.RoundTrip(ctx, wire)
	if err != nil {
		return "", fmt.Errorf("driver: round trip: %w", err)
	}
	c.logger.Printf("< %s\n", reply)
	return reply, nil
}

// Close releases the underlying Transport.
func (c *Conn) Close() error {
	return c.transport.Close()
}
