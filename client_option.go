package iec104

import (
	"crypto/tls"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the registered IEC 60870-5-104 TCP port.
	DefaultPort = 2404

	DefaultReconnectRetries  = 0
	DefaultReconnectInterval = 1 * time.Minute
)

func NewClientOption(server string, handler ClientHandler) (*ClientOption, error) {
	if len(server) > 0 && server[0] == ':' {
		server = "127.0.0.1" + server
	}
	if !strings.Contains(server, "://") {
		server = "tcp://" + server
	}
	remoteURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}
	if remoteURL.Port() == "" {
		remoteURL.Host = remoteURL.Hostname() + ":" + strconv.Itoa(DefaultPort)
	}
	return &ClientOption{
		server: remoteURL,
		params: DefaultConnectionParameters(),
		autoReconnectRule: &AutoReconnectRule{
			retries:  DefaultReconnectRetries,
			interval: DefaultReconnectInterval,
		},
		handler: handler,
		tc:      nil,
	}, nil
}

type ClientOption struct {
	server            *url.URL
	params            *ConnectionParameters
	autoReconnectRule *AutoReconnectRule

	onConnectHandler    OnConnectHandler
	onDisconnectHandler OnDisconnectHandler
	eventHandler        ConnectionEventHandler

	handler ClientHandler

	tc *tls.Config
}

type AutoReconnectRule struct {
	retries  int
	interval time.Duration
}

func NewAutoReconnectRule(retries int, interval time.Duration) *AutoReconnectRule {
	return &AutoReconnectRule{retries: retries, interval: interval}
}

// SetConnectionParameters replaces the wire-format and timing profile. The
// parameters are validated and cloned when Connect runs.
func (o *ClientOption) SetConnectionParameters(params *ConnectionParameters) *ClientOption {
	if params != nil {
		o.params = params
	}
	return o
}

// SetConnectTimeout adjusts t0, the TCP connect deadline.
func (o *ClientOption) SetConnectTimeout(timeout time.Duration) *ClientOption {
	if timeout > 0 {
		o.params.T0 = timeout
	}
	return o
}

func (o *ClientOption) SetAutoReconnectRule(rule *AutoReconnectRule) *ClientOption {
	if rule == nil {
		return o
	}
	if rule.retries < 0 {
		rule.retries = DefaultReconnectRetries
	}
	if rule.interval < 0 {
		rule.interval = DefaultReconnectInterval
	}
	o.autoReconnectRule = rule
	return o
}

func (o *ClientOption) SetTLS(tc *tls.Config) *ClientOption {
	o.tc = tc
	return o
}

type OnConnectHandler func(c *Client)

func (o *ClientOption) SetOnConnectHandler(handler OnConnectHandler) *ClientOption {
	if handler != nil {
		o.onConnectHandler = handler
	}
	return o
}

type OnDisconnectHandler func(c *Client)

func (o *ClientOption) SetOnDisconnectHandler(handler OnDisconnectHandler) *ClientOption {
	if handler != nil {
		o.onDisconnectHandler = handler
	}
	return o
}

// ConnectionEvent marks a transition of the link lifecycle.
type ConnectionEvent int

const (
	// EventOpened fires when the TCP connection is established.
	EventOpened ConnectionEvent = iota
	// EventClosed fires once per connect cycle, after the socket is released.
	EventClosed
	// EventStartDTConReceived fires when the peer confirms STARTDT; the link
	// is active and I-frames may flow.
	EventStartDTConReceived
	// EventStopDTConReceived fires when the peer confirms STOPDT; the link
	// falls back to the unconfirmed-open state.
	EventStopDTConReceived
)

func (e ConnectionEvent) String() string {
	switch e {
	case EventOpened:
		return "OPENED"
	case EventClosed:
		return "CLOSED"
	case EventStartDTConReceived:
		return "STARTDT_CON_RECEIVED"
	case EventStopDTConReceived:
		return "STOPDT_CON_RECEIVED"
	}
	return "UNKNOWN"
}

// ConnectionEventHandler observes lifecycle transitions. EventOpened is raised
// on the goroutine running Connect; the other events are raised on the
// connection's receive goroutine under the same contract as ClientHandler.
type ConnectionEventHandler func(c *Client, event ConnectionEvent)

func (o *ClientOption) SetConnectionEventHandler(handler ConnectionEventHandler) *ClientOption {
	if handler != nil {
		o.eventHandler = handler
	}
	return o
}
