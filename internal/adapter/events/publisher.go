// internal/adapter/events/publisher.go

package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"postforge/internal/domain/post"
)

// EventPostGenerated is the envelope type for newly generated posts
const EventPostGenerated = "post.generated"

// Event is the JSON envelope published on the bus
type Event struct {
	Type string    `json:"type"`
	Post post.Post `json:"post"`
	Time time.Time `json:"time"`
}

// GeneratedSubject returns the subject generated posts are published on
func GeneratedSubject(topic string) string {
	return fmt.Sprintf("%s.generated", topic)
}

// Conn is the subset of *nats.Conn the publisher needs
type Conn interface {
	Publish(subj string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

// Publisher announces posts on NATS
type Publisher struct {
	conn  Conn
	topic string
	now   func() time.Time
}

// NewPublisher creates a publisher writing to <topic>.generated
func NewPublisher(conn Conn, topic string) *Publisher {
	return &Publisher{
		conn:  conn,
		topic: topic,
		now:   time.Now,
	}
}

// PublishPostGenerated publishes a post generated event
func (p *Publisher) PublishPostGenerated(generated post.Post) error {
	data, err := json.Marshal(Event{
		Type: EventPostGenerated,
		Post: generated,
		Time: p.now(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling post event: %w", err)
	}

	return p.conn.Publish(GeneratedSubject(p.topic), data)
}
