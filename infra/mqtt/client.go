// Package mqtt publishes optimisation results to an MQTT broker using Eclipse Paho.
package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/heatplan/infra/logger"
)

// ErrNotConnected is returned when publishing on a closed publisher.
var ErrNotConnected = errors.New("mqtt publisher not connected")

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Broker      string      `json:"broker" yaml:"broker" mapstructure:"broker"`
	ClientID    string      `json:"client_id" yaml:"client_id" mapstructure:"client_id"`
	Username    string      `json:"username" yaml:"username" mapstructure:"username"`
	Password    string      `json:"password" yaml:"password" mapstructure:"password"`
	TopicPrefix string      `json:"topic_prefix" yaml:"topic_prefix" mapstructure:"topic_prefix"`
	QoS         byte        `json:"qos" yaml:"qos" mapstructure:"qos"`
	Retain      bool        `json:"retain" yaml:"retain" mapstructure:"retain"`
	UseTLS      bool        `json:"use_tls" yaml:"use_tls" mapstructure:"use_tls"`
	ClientCert  string      `json:"client_cert" yaml:"client_cert" mapstructure:"client_cert"`
	ClientKey   string      `json:"client_key" yaml:"client_key" mapstructure:"client_key"`
	CABundle    string      `json:"ca_bundle" yaml:"ca_bundle" mapstructure:"ca_bundle"`
	AuthMethod  string      `json:"auth_method" yaml:"auth_method" mapstructure:"auth_method"`
	LWTTopic    string      `json:"lwt_topic" yaml:"lwt_topic" mapstructure:"lwt_topic"`
	LWTPayload  string      `json:"lwt_payload" yaml:"lwt_payload" mapstructure:"lwt_payload"`
	LWTQoS      byte        `json:"lwt_qos" yaml:"lwt_qos" mapstructure:"lwt_qos"`
	LWTRetain   bool        `json:"lwt_retain" yaml:"lwt_retain" mapstructure:"lwt_retain"`
	MaxRetries  int         `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
	BackoffMS   int         `json:"backoff_ms" yaml:"backoff_ms" mapstructure:"backoff_ms"`
	TLSConfig   *tls.Config `json:"-" yaml:"-" mapstructure:"-"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "heatplan"
	}
	if c.TopicPrefix == "" {
		c.TopicPrefix = "heatplan"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.BackoffMS <= 0 {
		c.BackoffMS = 100
	}
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// ResultPublisher publishes JSON documents below a topic prefix, retrying
// failed publishes with exponential backoff.
type ResultPublisher struct {
	cli        pahoClient
	prefix     string
	qos        byte
	retain     bool
	maxRetries int
	backoff    time.Duration
	log        logger.Logger
}

// NewResultPublisher connects to the broker described by cfg.
func NewResultPublisher(cfg Config) (*ResultPublisher, error) {
	cfg.SetDefaults()
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt_publisher")
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected to %s", cfg.Broker)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.Broker, token.Error())
	}
	return &ResultPublisher{
		cli:        c,
		prefix:     strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:        cfg.QoS,
		retain:     cfg.Retain,
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		log:        log,
	}, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt broker is required")
	}
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.AuthMethod == "username_password" || cfg.AuthMethod == "both" || cfg.AuthMethod == "" {
		if cfg.Username != "" {
			opts.SetUsername(cfg.Username)
		}
		if cfg.Password != "" {
			opts.SetPassword(cfg.Password)
		}
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if cfg.LWTTopic != "" {
		opts.SetWill(cfg.LWTTopic, cfg.LWTPayload, cfg.LWTQoS, cfg.LWTRetain)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.TLSConfig != nil {
		return c.TLSConfig, nil
	}
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caBytes)
	return &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

// Topic returns the full topic for a suffix.
func (p *ResultPublisher) Topic(suffix string) string {
	if p.prefix == "" {
		return suffix
	}
	return p.prefix + "/" + strings.TrimPrefix(suffix, "/")
}

// Publish marshals v to JSON and publishes it on prefix/suffix. Each failed
// attempt waits backoff·2^attempt before retrying, or returns early when ctx
// is done.
func (p *ResultPublisher) Publish(ctx context.Context, suffix string, v any) error {
	if p.cli == nil {
		return ErrNotConnected
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	topic := p.Topic(suffix)
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		token := p.cli.Publish(topic, p.qos, p.retain, payload)
		token.Wait()
		if publishErr = token.Error(); publishErr == nil {
			p.log.Debugf("published %d bytes to %s", len(payload), topic)
			return nil
		}
		p.log.Errorf("publish attempt %d to %s failed: %v", attempt+1, topic, publishErr)
		if attempt == p.maxRetries {
			break
		}
		timer := time.NewTimer(p.backoff * time.Duration(1<<attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return fmt.Errorf("publish %s: %w", topic, publishErr)
}

// Close disconnects from the broker.
func (p *ResultPublisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
