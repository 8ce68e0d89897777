package ws

import (
	"sync"
)

// Socket is the write surface Conn guards. *websocket.Conn satisfies it.
type Socket interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Conn serializes writes to one websocket connection. The read loop and the
// broadcast goroutines both write frames; the underlying connection allows
// only one writer at a time.
type Conn struct {
	sock Socket
	mu   sync.Mutex
}

func NewConn(sock Socket) *Conn {
	return &Conn{sock: sock}
}

func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(v)
}

func (c *Conn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteMessage(messageType, data)
}

func (c *Conn) Close() error {
	return c.sock.Close()
}
