package observer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/seeker/internal/sim"
)

// Frame is one rendered tick as sent to spectators.
type Frame struct {
	Tick    uint64       `json:"tick"`
	ArenaW  int          `json:"arena_w"`
	ArenaH  int          `json:"arena_h"`
	Phase   string       `json:"phase"`
	Circles []sim.Circle `json:"circles"`
	Stats   sim.Stats    `json:"stats"`
}

// SpawnResponse is returned by POST /spawn.
type SpawnResponse struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

const (
	writeWait      = 5 * time.Second
	readWait       = 60 * time.Second
	maxMessageSize = 512
)

// Server exposes a world over HTTP and websocket.
type Server struct {
	world *sim.World
	hub   *Hub
	log   *log.Logger

	upgrader    websocket.Upgrader
	allowRemote bool
	readWait    time.Duration

	rec sim.Recorder // only touched from OnFrame
}

// Option configures a Server.
type Option func(*Server)

// WithRemoteAccess allows non-loopback clients.
func WithRemoteAccess() Option {
	return func(s *Server) { s.allowRemote = true }
}

// NewServer creates an observer for w.
func NewServer(w *sim.World, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		world:    w,
		hub:      NewHub(),
		log:      logger,
		readWait: readWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnFrame renders the world after a tick and publishes it. It is meant to
// be the Runner's OnFrame callback and must not be called concurrently.
func (s *Server) OnFrame(res sim.TickResult) {
	if s.hub.Len() == 0 {
		return
	}

	s.rec.Reset()
	stats := s.world.Render(&s.rec)
	arena := s.world.Arena()

	b, err := json.Marshal(Frame{
		Tick:    res.Tick,
		ArenaW:  arena.W,
		ArenaH:  arena.H,
		Phase:   res.Phase.String(),
		Circles: s.rec.Circles,
		Stats:   stats,
	})
	if err != nil {
		s.log.Error("encode frame", "error", err)
		return
	}
	if dropped := s.hub.Publish(b); dropped > 0 {
		s.log.Debug("slow spectators skipped frame", "tick", res.Tick, "dropped", dropped)
	}
}

// Handler returns the HTTP routes: GET /state, GET /ws, POST /spawn.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", s.guard(s.handleState))
	mux.HandleFunc("/spawn", s.guard(s.handleSpawn))
	mux.HandleFunc("/ws", s.guard(s.handleWS))
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("observer listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("observer: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("observer shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !s.allowRemote && !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		next(rw, r)
	}
}

func (s *Server) handleState(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(rw, s.world.Snapshot())
}

func (s *Server) handleSpawn(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rw.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	it := s.world.SpawnItemAtRandom()
	s.log.Debug("item spawned", "x", it.X(), "y", it.Y(), "remote", r.RemoteAddr)
	writeJSON(rw, SpawnResponse{X: it.X(), Y: it.Y(), Size: it.Size()})
}

func (s *Server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id, frames := s.hub.Subscribe()
	defer s.hub.Unsubscribe(id)
	s.log.Info("spectator joined", "id", id, "remote", r.RemoteAddr)
	defer s.log.Info("spectator left", "id", id)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Spectators send nothing, so liveness comes from pongs answering the
	// writer's pings. A silent peer hits the read deadline and is dropped.
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(s.readWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.readWait))
	})

	// Writer goroutine.
	writeErr := make(chan error, 1)
	go func() {
		ping := time.NewTicker(s.readWait * 9 / 10)
		defer ping.Stop()
		for {
			select {
			case <-ctx.Done():
				writeErr <- ctx.Err()
				return
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					writeErr <- err
					return
				}
			case b, ok := <-frames:
				if !ok {
					writeErr <- nil
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					writeErr <- err
					return
				}
			}
		}
	}()

	// Reader loop only detects disconnects, oversized messages and timeouts.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.log.Debug("spectator read ended", "id", id, "error", err)
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(s.readWait))
	}

	cancel()
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))

	select {
	case <-writeErr:
	case <-time.After(500 * time.Millisecond):
	}
}

func writeJSON(rw http.ResponseWriter, v any) {
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(v)
}

func isLoopbackRemote(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
