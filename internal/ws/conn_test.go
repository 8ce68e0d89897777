package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/stretchr/testify/assert"
)

// slowSocket flags any write that starts while another is still in flight.
type slowSocket struct {
	mu      sync.Mutex
	writing bool
	overlap bool
	writes  int
}

func (s *slowSocket) write() {
	s.mu.Lock()
	if s.writing {
		s.overlap = true
	}
	s.writing = true
	s.mu.Unlock()

	time.Sleep(time.Millisecond)

	s.mu.Lock()
	s.writing = false
	s.writes++
	s.mu.Unlock()
}

func (s *slowSocket) WriteJSON(v interface{}) error {
	s.write()
	return nil
}

func (s *slowSocket) WriteMessage(messageType int, data []byte) error {
	s.write()
	return nil
}

func (s *slowSocket) Close() error { return nil }

func TestConnSerializesConcurrentWrites(t *testing.T) {
	sock := &slowSocket{}
	conn := NewConn(sock)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn.WriteJSON(Message{Type: MessageTypeGameState})
			conn.WriteMessage(websocket.TextMessage, []byte("ping"))
		}()
	}
	wg.Wait()

	assert.False(t, sock.overlap, "writes to one connection must not interleave")
	assert.Equal(t, 16, sock.writes)
}
