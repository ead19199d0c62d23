package network

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/engine"
	"github.com/lixenwraith/baobei/status"
)

// sendBuffer is the per-client frame backlog before frames are dropped
const sendBuffer = 16

// Hub fans encoded snapshots out to connected clients
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]chan []byte
	log     *logrus.Entry

	statClients *atomic.Int64
	statFrames  *atomic.Int64
}

func NewHub(reg *status.Registry, log *logrus.Entry) *Hub {
	return &Hub{
		clients:     make(map[uuid.UUID]chan []byte),
		log:         log,
		statClients: reg.Ints.Get(status.KeyFeedClients),
		statFrames:  reg.Ints.Get(status.KeyFramesPushed),
	}
}

// Register adds a client and returns its frame channel
func (h *Hub) Register(id uuid.UUID) <-chan []byte {
	ch := make(chan []byte, sendBuffer)
	h.mu.Lock()
	h.clients[id] = ch
	h.statClients.Store(int64(len(h.clients)))
	h.mu.Unlock()
	return ch
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
	h.statClients.Store(int64(len(h.clients)))
}

// Len returns connected client count
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues frame for every client, slow clients miss frames
func (h *Hub) Broadcast(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.clients {
		select {
		case ch <- frame:
			h.statFrames.Add(1)
		default:
			h.log.WithField("client", id).Debug("feed client lagging, frame dropped")
		}
	}
}

// Observe encodes and broadcasts a published snapshot
// Skips encoding when nobody listens
func (h *Hub) Observe(s engine.Snapshot) {
	if h.Len() == 0 {
		return
	}
	data, err := json.Marshal(ServerFrame{Type: FrameSnapshot, Snapshot: NewSnapshotFrame(s)})
	if err != nil {
		h.log.WithError(err).Error("encode snapshot frame")
		return
	}
	h.Broadcast(data)
}
