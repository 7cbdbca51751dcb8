package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"accesstree/pkg/schema"
)

// ackTimeout bounds how long a pushed update waits for the server's ack.
const ackTimeout = 10 * time.Second

// ErrClosed is returned by operations on a closed client.
var ErrClosed = errors.New("ipc: client closed")

// Client is the producer side of a connection: it pushes tree updates to
// the server and receives the action requests the server routes back.
type Client struct {
	conn    net.Conn
	handler schema.ActionHandler

	writeMu sync.Mutex
	nextSeq atomic.Uint64

	mu      sync.Mutex
	pending map[uint64]chan error
	closed  bool

	wg sync.WaitGroup
}

// Dial connects to the server socket, performs the hello handshake, and
// starts the receive loop. handler receives routed action requests; it may
// be nil.
func Dial(socketPath, name string, handler schema.ActionHandler) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial socket: %w", err)
	}
	c := &Client{
		conn:    conn,
		handler: handler,
		pending: make(map[uint64]chan error),
	}
	c.wg.Add(1)
	go c.readLoop()

	hello := Hello{Name: name, ProtocolVersion: ProtocolVersion}
	if err := c.send(TypeHello, hello); err != nil {
		c.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	return c, nil
}

// PushUpdate sends one tree update and waits for the server's ack. A
// rejected update comes back as an error carrying the server's message.
func (c *Client) PushUpdate(update schema.TreeUpdate) error {
	return c.send(TypeUpdate, update)
}

// Close shuts the connection down. Pending pushes fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	err := c.conn.Close()
	c.wg.Wait()
	return err
}

// send writes a frame and waits for the matching ack or error frame.
func (c *Client) send(frameType string, payload any) error {
	seq := c.nextSeq.Add(1)
	frame, err := newFrame(frameType, seq, payload)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.pending[seq] = done
	c.mu.Unlock()

	c.writeMu.Lock()
	err = WriteFrame(c.conn, frame)
	c.writeMu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
		return err
	}

	select {
	case err := <-done:
		return err
	case <-time.After(ackTimeout):
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
		return fmt.Errorf("timed out waiting for ack of seq %d", seq)
	}
}

func (c *Client) readLoop() {
	defer c.wg.Done()
	for {
		frame, err := ReadFrame(c.conn)
		if err != nil {
			c.failPending(err)
			return
		}
		switch frame.Type {
		case TypeAck:
			c.resolve(frame.Seq, nil)
		case TypeError:
			var body ErrorBody
			if err := json.Unmarshal(frame.Payload, &body); err != nil {
				c.resolve(frame.Seq, fmt.Errorf("malformed error frame: %w", err))
				continue
			}
			c.resolve(frame.Seq, fmt.Errorf("server rejected request: %s", body.Message))
		case TypeAction:
			if c.handler == nil {
				continue
			}
			var request schema.ActionRequest
			if err := json.Unmarshal(frame.Payload, &request); err != nil {
				continue
			}
			c.handler.DoAction(request)
		}
	}
}

func (c *Client) resolve(seq uint64, err error) {
	c.mu.Lock()
	done, ok := c.pending[seq]
	delete(c.pending, seq)
	c.mu.Unlock()
	if ok {
		done <- err
	}
}

// failPending unblocks every in-flight push after the connection drops.
func (c *Client) failPending(cause error) {
	if cause == io.EOF || errors.Is(cause, net.ErrClosed) {
		cause = ErrClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for seq, done := range c.pending {
		done <- cause
		delete(c.pending, seq)
	}
}
