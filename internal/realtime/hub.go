package realtime

import (
	"context"
	"encoding/json"
	"expvar"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventType for websocket messages
type EventType string

const (
	EventList         EventType = "list"
	EventNotification EventType = "notification"
)

// changesChannel carries "resource changed" messages between console instances.
const changesChannel = "console:resource_changed"

var (
	wsConnectionsGauge   = expvar.NewInt("console_websocket_connections")
	wsEventsSentTotal    = expvar.NewInt("console_websocket_events_sent_total")
	wsEventsDroppedTotal = expvar.NewInt("console_websocket_events_dropped_total")
	remoteChangesTotal   = expvar.NewInt("console_remote_changes_total")
)

// Event is pushed to browsers following a resource.
type Event struct {
	Type     EventType   `json:"type"`
	Resource string      `json:"resource"`
	Data     interface{} `json:"data,omitempty"`
}

type changeMessage struct {
	Resource         string `json:"resource"`
	SenderInstanceID string `json:"sender_instance_id"`
}

// Connection is one browser following the list of a resource.
type Connection struct {
	Topic string
	Conn  *websocket.Conn
	Send  chan []byte
}

// NewConnection creates a connection with a buffered send queue.
func NewConnection(topic string, conn *websocket.Conn) *Connection {
	return &Connection{Topic: topic, Conn: conn, Send: make(chan []byte, 64)}
}

// Hub tracks live list connections per resource and relays changes between
// console instances through Redis Pub/Sub.
type Hub struct {
	connections map[string]map[*Connection]bool
	refreshers  map[string]func()

	redis  *redis.Client
	pubsub *redis.PubSub

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc

	instanceID string
	publishFn  func(ctx context.Context, channel string, payload []byte) error
}

// NewHub creates a hub. A nil Redis client keeps it local to this instance.
func NewHub(redisClient *redis.Client) *Hub {
	return NewHubWithInstanceID(redisClient, uuid.NewString())
}

// NewHubWithInstanceID creates a hub with an explicit instance identifier.
func NewHubWithInstanceID(redisClient *redis.Client, instanceID string) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[string]map[*Connection]bool),
		refreshers:  make(map[string]func()),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
		instanceID:  instanceID,
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, changesChannel)
		h.publishFn = func(ctx context.Context, channel string, payload []byte) error {
			return redisClient.Publish(ctx, channel, payload).Err()
		}
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.connections[conn.Topic] == nil {
				h.connections[conn.Topic] = make(map[*Connection]bool)
			}
			h.connections[conn.Topic][conn] = true
			h.mu.Unlock()
			wsConnectionsGauge.Add(1)
			log.Debug().Str("resource", conn.Topic).Msg("Live list connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.connections[conn.Topic]; ok {
				if _, exists := conns[conn]; exists {
					delete(conns, conn)
					close(conn.Send)
					wsConnectionsGauge.Add(-1)
				}
				if len(conns) == 0 {
					delete(h.connections, conn.Topic)
				}
			}
			h.mu.Unlock()
			log.Debug().Str("resource", conn.Topic).Msg("Live list disconnected")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Channel == changesChannel {
				h.handleChangePayload(msg.Payload)
			}
		}
	}
}

// handleChangePayload refreshes the local cache of a resource another
// instance mutated.
func (h *Hub) handleChangePayload(payload string) {
	var msg changeMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return
	}
	if msg.SenderInstanceID == h.instanceID {
		return
	}

	h.mu.RLock()
	refresh := h.refreshers[msg.Resource]
	h.mu.RUnlock()

	if refresh == nil {
		return
	}
	remoteChangesTotal.Add(1)
	log.Debug().Str("resource", msg.Resource).Str("sender", msg.SenderInstanceID).Msg("Refreshing after remote change")
	refresh()
}

// OnRemoteChange registers the refresh of a resource's cache, triggered when
// another instance reports a mutation of it.
func (h *Hub) OnRemoteChange(resource string, refresh func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refreshers[resource] = refresh
}

// PublishChange tells the other console instances that resource was mutated.
// Without Redis it does nothing.
func (h *Hub) PublishChange(resource string) {
	if h.publishFn == nil {
		return
	}

	payload, err := json.Marshal(changeMessage{Resource: resource, SenderInstanceID: h.instanceID})
	if err != nil {
		return
	}
	if err := h.publishFn(h.ctx, changesChannel, payload); err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("Redis publish failed")
	}
}

// SendToTopic delivers event to every connection following topic on this
// instance. A full send buffer drops the event for that connection.
func (h *Hub) SendToTopic(topic string, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal live event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections[topic] {
		h.enqueue(conn, data)
	}
}

// SendTo delivers event to one connection if it is still registered.
func (h *Hub) SendTo(conn *Connection, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal live event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.connections[conn.Topic][conn] {
		h.enqueue(conn, data)
	}
}

// enqueue must be called with mu held.
func (h *Hub) enqueue(conn *Connection, data []byte) {
	select {
	case conn.Send <- data:
		wsEventsSentTotal.Add(1)
	default:
		wsEventsDroppedTotal.Add(1)
		log.Warn().Str("resource", conn.Topic).Msg("WebSocket send buffer full")
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.ctx.Done():
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.ctx.Done():
	}
}

// GetConnectionCount returns number of local connections
func (h *Hub) GetConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, conns := range h.connections {
		total += len(conns)
	}
	return total
}

// TopicConnectionCount returns number of local connections following topic.
func (h *Hub) TopicConnectionCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[topic])
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}
}
