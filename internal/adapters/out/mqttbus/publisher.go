// Package mqttbus publishes domain events over MQTT using the Eclipse Paho
// client. Events are serialized to JSON and delivered at QoS 1.
package mqttbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	publishQoS     = 1
)

// Publisher implements EventPublisher on top of an MQTT broker connection.
type Publisher struct {
	client mqtt.Client
}

// NewPublisher connects to the broker at the given URL and returns a ready
// publisher. The connection retries in the background once established.
func NewPublisher(brokerURL string, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", brokerURL, err)
	}

	return &Publisher{client: client}, nil
}

// Publish serializes the event to JSON and delivers it on the given topic.
func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for topic %s: %w", topic, err)
	}

	token := p.client.Publish(topic, publishQoS, false, payload)

	done := make(chan struct{})
	go func() {
		token.WaitTimeout(publishTimeout)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to topic %s: %w", topic, err)
	}
	return nil
}

// Close disconnects from the broker, allowing in-flight work to finish.
func (p *Publisher) Close() {
	p.client.Disconnect(uint(publishTimeout.Milliseconds()))
}
