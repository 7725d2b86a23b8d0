// Package telemetry publishes supply readings to an MQTT broker and
// accepts commands from it.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allbin/go-ka3005p"
	paho "github.com/eclipse/paho.mqtt.golang"
)

// Config holds broker and publishing settings
type Config struct {
	Broker     string
	ClientID   string
	Username   string
	Password   string
	Prefix     string
	QoS        byte
	Interval   time.Duration
	KeepAlive  time.Duration
	RetryDelay time.Duration
}

// DefaultConfig returns settings for a local broker
func DefaultConfig() Config {
	return Config{
		Broker:     "tcp://localhost:1883",
		ClientID:   "ka3005p",
		Prefix:     "ka3005p",
		QoS:        1,
		Interval:   time.Second,
		KeepAlive:  60 * time.Second,
		RetryDelay: 5 * time.Second,
	}
}

// Bridge connects one supply to a broker
type Bridge struct {
	client paho.Client
	cfg    Config
	topics Topics
	supply Supply
	log    ka3005p.Logger

	// set messages wait here for Run; paho handlers must not block
	requests chan setRequest
}

// setRequest is one inbound <prefix>/set/<verb> message
type setRequest struct {
	topic   string
	payload []byte
}

// requestQueue bounds how many set messages may wait for the supply
const requestQueue = 16

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// NewBridge prepares the client. Nothing is sent until Connect.
func NewBridge(cfg Config, supply Supply, log ka3005p.Logger) *Bridge {
	if log == nil {
		log = nopLogger{}
	}
	b := &Bridge{
		cfg:      cfg,
		topics:   Topics{Prefix: cfg.Prefix},
		supply:   supply,
		log:      log,
		requests: make(chan setRequest, requestQueue),
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(cfg.KeepAlive)
	opts.SetPingTimeout(10 * time.Second)

	// the broker marks the supply offline if we vanish
	opts.SetWill(b.topics.Availability(), PayloadOffline, cfg.QoS, true)

	opts.SetOnConnectHandler(b.onConnect)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		b.log.Error("broker connection lost", "error", err)
	})

	b.client = paho.NewClient(opts)
	return b
}

// onConnect runs after every (re)connect, so the subscription survives
// broker restarts
func (b *Bridge) onConnect(client paho.Client) {
	b.log.Info("connected to broker", "broker", b.cfg.Broker)

	if token := client.Publish(b.topics.Availability(), b.cfg.QoS, true, PayloadOnline); token.Wait() && token.Error() != nil {
		b.log.Error("could not publish availability", "error", token.Error())
	}
	if token := client.Subscribe(b.topics.SetFilter(), b.cfg.QoS, b.onSet); token.Wait() && token.Error() != nil {
		b.log.Error("could not subscribe", "topic", b.topics.SetFilter(), "error", token.Error())
	}
}

func (b *Bridge) onSet(_ paho.Client, msg paho.Message) {
	b.enqueue(msg.Topic(), msg.Payload())
}

// enqueue hands a set message to Run without blocking. It reports
// false, dropping the message, when the queue is full.
func (b *Bridge) enqueue(topic string, payload []byte) bool {
	req := setRequest{topic: topic, payload: append([]byte(nil), payload...)}
	select {
	case b.requests <- req:
		return true
	default:
		b.log.Error("command queue full, dropping", "topic", topic, "payload", string(payload))
		return false
	}
}

// apply runs one queued set message against the supply
func (b *Bridge) apply(req setRequest) {
	cmd, err := HandleSet(b.supply, b.topics, req.topic, req.payload)
	if err != nil {
		b.log.Error("rejected command", "topic", req.topic, "payload", string(req.payload), "error", err)
		return
	}
	b.log.Info("executed command", "topic", req.topic, "request", cmd.Encode())

	// publish the effect right away instead of waiting for the next tick
	if err := b.PublishStatus(); err != nil {
		b.log.Error("could not publish status", "error", err)
	}
}

// Connect dials the broker, retrying until it succeeds or ctx ends
func (b *Bridge) Connect(ctx context.Context) error {
	attempt := 1
	for {
		b.log.Debug("connecting to broker", "broker", b.cfg.Broker, "attempt", attempt)

		token := b.client.Connect()
		if token.Wait() && token.Error() == nil {
			return nil
		}
		b.log.Error("broker connection failed", "attempt", attempt, "error", token.Error())

		select {
		case <-ctx.Done():
			return fmt.Errorf("broker connection cancelled: %w", ctx.Err())
		case <-time.After(b.cfg.RetryDelay):
			attempt++
		}
	}
}

// PublishStatus reads the supply once and publishes the snapshot
func (b *Bridge) PublishStatus() error {
	status, err := b.supply.Status()
	if err != nil {
		return fmt.Errorf("could not read status: %w", err)
	}

	payload, err := json.Marshal(StatusPayload{Timestamp: time.Now(), Status: status})
	if err != nil {
		return fmt.Errorf("error serializing status: %w", err)
	}

	token := b.client.Publish(b.topics.Status(), b.cfg.QoS, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("error publishing status: %w", token.Error())
	}
	b.log.Debug("published status", "topic", b.topics.Status(), "bytes", len(payload))
	return nil
}

// Run publishes on every interval and applies queued set messages until
// ctx ends, then marks the supply offline and disconnects. A failed read
// is logged and retried on the next tick.
func (b *Bridge) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	if err := b.PublishStatus(); err != nil {
		b.log.Error("publish failed", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			b.shutdown()
			return nil
		case req := <-b.requests:
			b.apply(req)
		case <-ticker.C:
			if err := b.PublishStatus(); err != nil {
				b.log.Error("publish failed", "error", err)
			}
		}
	}
}

func (b *Bridge) shutdown() {
	if !b.client.IsConnected() {
		return
	}
	token := b.client.Publish(b.topics.Availability(), b.cfg.QoS, true, PayloadOffline)
	token.WaitTimeout(2 * time.Second)
	b.client.Disconnect(250)
	b.log.Info("disconnected from broker")
}
