package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"accesstree/internal/logging"
	"accesstree/pkg/consumer"
	"accesstree/pkg/schema"
)

// ServerConfig configures the IPC server.
type ServerConfig struct {
	SocketPath string
	// Filter shapes the server-side tree; nil includes every node.
	Filter consumer.Filter
	Logger *logging.Logger
}

// Server listens on a unix socket for a producer connection. Updates are
// folded into a consumer tree, with changes reported to the handler given
// at construction; action requests raised against the tree are sent back
// to the producer that fed it.
type Server struct {
	socketPath string
	filter     consumer.Filter
	handler    consumer.ChangeHandler
	logger     *logging.Logger

	listener net.Listener
	running  atomic.Bool
	wg       sync.WaitGroup

	mu       sync.RWMutex
	tree     *consumer.Tree
	producer net.Conn
	writeMu  sync.Mutex

	nextSeq atomic.Uint64
}

// NewServer creates a server. handler receives the change events from each
// applied update; it may be nil. Handler methods run while the server's
// lock is held and must not call back into the server or its tree.
func NewServer(cfg ServerConfig, handler consumer.ChangeHandler) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Server{
		socketPath: cfg.SocketPath,
		filter:     cfg.Filter,
		handler:    handler,
		logger:     logger.WithComponent("ipc"),
	}
}

// Start begins listening. A stale socket file from a previous run is
// removed first.
func (s *Server) Start() error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o700); err != nil {
		return fmt.Errorf("create socket directory: %w", err)
	}
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale socket: %w", err)
	}
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listen on socket: %w", err)
	}
	if err := os.Chmod(s.socketPath, 0o600); err != nil {
		listener.Close()
		return fmt.Errorf("set socket permissions: %w", err)
	}

	s.listener = listener
	s.running.Store(true)
	s.wg.Add(1)
	go s.acceptLoop()

	s.logger.Info("listening", "socket", s.socketPath)
	return nil
}

// Stop closes the listener and the producer connection and removes the
// socket file.
func (s *Server) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	if s.listener != nil {
		s.listener.Close()
	}
	s.mu.Lock()
	if s.producer != nil {
		s.producer.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
	os.Remove(s.socketPath)
	return nil
}

// SocketPath returns the socket path.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Tree returns the consumer tree built from the producer's updates, or nil
// before the first update arrives.
func (s *Server) Tree() *consumer.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// DoAction forwards an action request to the connected producer. It
// implements schema.ActionHandler, which is how the consumer tree routes
// its requests here. With no producer connected the request is dropped.
func (s *Server) DoAction(request schema.ActionRequest) {
	s.mu.RLock()
	conn := s.producer
	s.mu.RUnlock()
	if conn == nil {
		s.logger.Warn("dropping action, no producer connected", "action", request.Action)
		return
	}
	frame, err := newFrame(TypeAction, s.nextSeq.Add(1), request)
	if err != nil {
		s.logger.Error("encode action", "error", err)
		return
	}
	if err := s.writeFrame(conn, frame); err != nil {
		s.logger.Error("send action", "error", err)
	}
}

func (s *Server) writeFrame(conn net.Conn, frame Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return WriteFrame(conn, frame)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("accept", "error", err)
			continue
		}

		// One producer at a time; a new connection displaces the old one.
		s.mu.Lock()
		if s.producer != nil {
			s.producer.Close()
		}
		s.producer = conn
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		conn.Close()
		s.mu.Lock()
		if s.producer == conn {
			s.producer = nil
		}
		s.mu.Unlock()
	}()

	frame, err := ReadFrame(conn)
	if err != nil {
		s.logger.Error("read hello", "error", err)
		return
	}
	if frame.Type != TypeHello {
		s.rejectFrame(conn, frame.Seq, fmt.Sprintf("expected hello, got %s", frame.Type))
		return
	}
	var hello Hello
	if err := json.Unmarshal(frame.Payload, &hello); err != nil {
		s.rejectFrame(conn, frame.Seq, fmt.Sprintf("decode hello: %v", err))
		return
	}
	if hello.ProtocolVersion > ProtocolVersion {
		s.rejectFrame(conn, frame.Seq, fmt.Sprintf("unsupported protocol version %d", hello.ProtocolVersion))
		return
	}
	if err := s.ack(conn, frame.Seq); err != nil {
		s.logger.Error("ack hello", "error", err)
		return
	}
	s.logger.Info("producer connected", "name", hello.Name)

	for {
		frame, err := ReadFrame(conn)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) && err != io.EOF {
				s.logger.Error("read frame", "error", err)
			}
			return
		}
		switch frame.Type {
		case TypeUpdate:
			var update schema.TreeUpdate
			if err := json.Unmarshal(frame.Payload, &update); err != nil {
				s.rejectFrame(conn, frame.Seq, fmt.Sprintf("decode update: %v", err))
				continue
			}
			if err := s.applyUpdate(update); err != nil {
				s.rejectFrame(conn, frame.Seq, err.Error())
				continue
			}
			if err := s.ack(conn, frame.Seq); err != nil {
				s.logger.Error("ack update", "error", err)
				return
			}
		default:
			s.rejectFrame(conn, frame.Seq, fmt.Sprintf("unexpected frame type %s", frame.Type))
		}
	}
}

// applyUpdate folds an update into the tree, creating it on the first one.
// Malformed updates are fatal to the tree; the panic is converted to an
// error frame so one bad producer does not take the server down.
func (s *Server) applyUpdate(update schema.TreeUpdate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply update: %v", r)
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tree == nil {
		s.tree = consumer.New(update, true, s, s.filter)
		if s.handler != nil {
			s.tree.Read(func(state *consumer.TreeState) {
				s.handler.NodeAdded(state.Root())
			})
		}
		return nil
	}
	s.tree.UpdateAndProcessChanges(update, s.handler)
	return nil
}

func (s *Server) ack(conn net.Conn, seq uint64) error {
	return s.writeFrame(conn, Frame{Type: TypeAck, Seq: seq})
}

func (s *Server) rejectFrame(conn net.Conn, seq uint64, message string) {
	frame, err := newFrame(TypeError, seq, ErrorBody{Message: message})
	if err != nil {
		s.logger.Error("encode error frame", "error", err)
		return
	}
	if err := s.writeFrame(conn, frame); err != nil {
		s.logger.Error("send error frame", "error", err)
	}
}
