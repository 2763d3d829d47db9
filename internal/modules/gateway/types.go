package gateway

import (
	"sync"

	pkgredis "github.com/flightfolio/core/internal/pkg/redis"
	socketio "github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

const (
	namespaceApp = "/app"
	redisChanApp = "ff:gateway:app"

	EventFlightCreated = "FLIGHT_CREATED"
	EventFlightUpdated = "FLIGHT_UPDATED"
	EventFlightDeleted = "FLIGHT_DELETED"
)

// Message is the envelope used by hub broadcasts and Redis fan-out.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type gatewayPayload struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub pushes flight lifecycle events to connected dashboards and fans them
// out over Redis so every server instance delivers them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]struct{}

	broadcast chan Message

	rc             *pkgredis.Client
	logger         *zap.Logger
	sio            *socketio.Server
	tokenValidator func(string) bool
}
