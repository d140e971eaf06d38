package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

var _ services.EventPublisher = (*NATSPublisher)(nil)

// Conn is the subset of *nats.Conn used for publishing
type Conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes meeting lifecycle events on core NATS subjects
// of the form <prefix>.<event>.
type NATSPublisher struct {
	conn   Conn
	prefix string
	close  func()
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url, prefix string, log *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("meeting-insights"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	p := NewPublisher(nc, prefix)
	p.close = func() {
		if err := nc.Drain(); err != nil {
			nc.Close()
		}
	}
	return p, nil
}

// NewPublisher wraps an established connection
func NewPublisher(conn Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = "meetings"
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject returns the subject an event name is published on
func (p *NATSPublisher) Subject(name string) string {
	return p.prefix + "." + name
}

// Publish implements services.EventPublisher
func (p *NATSPublisher) Publish(ctx context.Context, name string, event services.MeetingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(name), data); err != nil {
		return fmt.Errorf("nats publish %s: %w", p.Subject(name), err)
	}
	return nil
}

// Close drains the connection
func (p *NATSPublisher) Close() {
	if p.close != nil {
		p.close()
	}
}
