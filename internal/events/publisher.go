// Package events publishes score lifecycle events over NATS for downstream
// consumers (analytics, notifications). Publishing is fire-and-forget: a
// failed publish is the caller's to log, never to propagate.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectScoreRecorded is the NATS subject for completed scoring events.
const SubjectScoreRecorded = "mockmate.score.recorded"

// ScoreEvent is emitted after each completed scoring with a known identity.
type ScoreEvent struct {
	Username   string    `json:"username"`
	Mode       string    `json:"mode"`
	TotalScore int       `json:"total_score"`
	Grade      string    `json:"grade"`
	Timestamp  time.Time `json:"timestamp"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// ScoreRecorded publishes a score event.
func (p *Publisher) ScoreRecorded(username, mode string, total int, grade string) error {
	evt := ScoreEvent{
		Username:   username,
		Mode:       mode,
		TotalScore: total,
		Grade:      grade,
		Timestamp:  time.Now().UTC(),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal score event: %w", err)
	}
	return p.conn.Publish(SubjectScoreRecorded, data)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
