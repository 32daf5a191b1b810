// Package mqtt publishes computed production plans to an MQTT broker so
// downstream consumers (SCADA bridges, dashboards) can react to new plans.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/powerplan/core/planlog"
	"github.com/kilianp07/powerplan/infra/logger"
)

// Config defines the connection parameters for the plan publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "powerplan"
	}
	if c.Topic == "" {
		c.Topic = "powerplan/plans"
	}
}

// Validate checks mandatory fields when the publisher is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt broker is required")
	}
	return nil
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// newMQTTClient builds the underlying Paho client. Overridable in tests.
var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

const connectTimeout = 10 * time.Second

// PlanPublisher publishes plan records to a single topic.
type PlanPublisher struct {
	cli   pahoClient
	topic string
	qos   byte
	log   logger.Logger
}

// NewPlanPublisher connects to the MQTT broker.
func NewPlanPublisher(cfg Config) (*PlanPublisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	cli := newMQTTClient(opts)
	token := cli.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout to %s", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &PlanPublisher{cli: cli, topic: cfg.Topic, qos: cfg.QoS, log: logger.New("mqtt-publisher")}, nil
}

// PublishPlan publishes the record as JSON.
func (p *PlanPublisher) PublishPlan(rec planlog.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	token := p.cli.Publish(p.topic, p.qos, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish plan %s: %w", rec.PlanID, err)
	}
	p.log.Debugf("published plan %s to %s", rec.PlanID, p.topic)
	return nil
}

// Close disconnects from the broker.
func (p *PlanPublisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
