package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/status"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	shutdownWait   = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the snapshot feed and a health endpoint
type Server struct {
	session uuid.UUID
	room    [2]float64
	hub     *Hub
	pads    *RemotePads
	status  *status.Registry
	log     *logrus.Entry
}

// NewServer creates the feed server; room is the width and height sent in hello
func NewServer(session uuid.UUID, room [2]float64, hub *Hub, pads *RemotePads, reg *status.Registry, log *logrus.Entry) *Server {
	return &Server{
		session: session,
		room:    room,
		hub:     hub,
		pads:    pads,
		status:  reg,
		log:     log.WithField("service", "network"),
	}
}

// Handler routes /feed and /healthz
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /feed", s.serveFeed)
	mux.HandleFunc("GET /healthz", s.serveHealth)
	return mux
}

// Run listens on addr until ctx is cancelled
// An empty addr disables the server
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("feed listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Warn("feed shutdown")
		}
	})
	defer stop()

	s.log.WithField("addr", ln.Addr().String()).Info("snapshot feed listening")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("feed serve: %w", err)
	}
	return nil
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{
		"session": s.session.String(),
		"metrics": s.status.Export(),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithError(err).Debug("write health")
	}
}

func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("feed upgrade failed")
		return
	}

	id := uuid.New()
	log := s.log.WithField("client", id)
	// Registered before hello so no snapshot published after hello is missed
	frames := s.hub.Register(id)

	room := s.room
	hello := ServerFrame{Type: FrameHello, Session: s.session.String(), Client: id.String(), Room: &room}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.WithError(err).Warn("failed to set write deadline")
	}
	if err := conn.WriteJSON(hello); err != nil {
		log.WithError(err).Debug("write hello failed")
		s.hub.Unregister(id)
		_ = conn.Close()
		return
	}
	log.Info("feed client connected")

	go s.writePump(conn, frames, log)
	s.readPump(conn, id, log)
}

// readPump applies pad frames until the connection fails
func (s *Server) readPump(conn *websocket.Conn, id uuid.UUID, log *logrus.Entry) {
	defer func() {
		s.hub.Unregister(id)
		s.pads.Drop(id)
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("close feed connection")
		}
		log.Info("feed client disconnected")
	}()

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var f ClientFrame
		if err := conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("feed read error")
			}
			return
		}
		if f.Type != FramePad {
			log.WithField("type", f.Type).Debug("ignored client frame")
			continue
		}
		if err := s.pads.Apply(id, f); err != nil {
			log.WithError(err).Debug("pad frame rejected")
		}
	}
}

// writePump forwards hub frames and keeps the connection alive with pings
func (s *Server) writePump(conn *websocket.Conn, frames <-chan []byte, log *logrus.Entry) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case frame, ok := <-frames:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				log.WithError(err).Debug("write frame failed")
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
