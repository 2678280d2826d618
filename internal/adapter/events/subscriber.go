package events

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// Subscriber delivers generated post events from NATS
type Subscriber struct {
	conn  *nats.Conn
	topic string
}

// NewSubscriber creates a subscriber reading <topic>.generated
func NewSubscriber(conn *nats.Conn, topic string) *Subscriber {
	return &Subscriber{
		conn:  conn,
		topic: topic,
	}
}

// SubscribeGenerated calls deliver with the raw payload of every generated
// post event until the returned function is called
func (s *Subscriber) SubscribeGenerated(deliver func([]byte)) (func(), error) {
	sub, err := s.conn.Subscribe(GeneratedSubject(s.topic), func(msg *nats.Msg) {
		deliver(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to generated posts: %w", err)
	}

	return func() {
		_ = sub.Unsubscribe()
	}, nil
}
