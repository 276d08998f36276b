package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var ErrConnClosed = errors.New("connection closed")

// Conn is a websocket connection safe for concurrent writers.
type Conn struct {
	conn   *websocket.Conn
	id     string
	done   context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

func NewConn(ctx context.Context, id string, conn *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(ctx)

	return &Conn{
		conn:   conn,
		id:     id,
		done:   ctx,
		cancel: cancel,
	}
}

func (c *Conn) ID() string {
	return c.id
}

// Done is closed when the connection is closed.
func (c *Conn) Done() <-chan struct{} {
	return c.done.Done()
}

// Ping writes a ping control frame.
func (c *Conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.alive(); err != nil {
		return err
	}
	if err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Send writes msg as a JSON text frame.
func (c *Conn) Send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.alive(); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return c.conn.WriteJSON(msg)
}

// Listen reads data frames and passes their payload to handler, until the
// connection fails, the handler returns an error or the connection is closed.
// Decoding is left to the handler so a malformed payload does not end the stream.
func (c *Conn) Listen(handler func(data []byte) error) error {
	for {
		select {
		case <-c.done.Done():
			return ErrConnClosed
		default:
		}

		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if err := handler(data); err != nil {
			return fmt.Errorf("handler failed: %w", err)
		}
	}
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Err() != nil {
		return nil
	}
	c.cancel()

	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"),
		time.Now().Add(writeWait),
	)
	return c.conn.Close()
}

func (c *Conn) alive() error {
	if c.conn == nil {
		return errors.New("connection is nil")
	}
	if c.done.Err() != nil {
		return ErrConnClosed
	}
	return nil
}
