package hub

import (
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// One event per published image; a small buffer absorbs bursts
	// before the hub declares the client slow.
	sendBufferSize = 8
)

// Subscriber ties one websocket connection to the hub. Its lifetime is
// the connection's: readPump exit unregisters it.
type Subscriber struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Subscribe registers the connection and starts its pumps.
func (h *Hub) Subscribe(conn *websocket.Conn) *Subscriber {
	s := &Subscriber{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- s
	go s.writePump()
	go s.readPump()
	return s
}

// readPump discards inbound messages; the channel is server-to-client
// only. It exists to notice disconnects and answer pings.
func (s *Subscriber) readPump() {
	defer func() {
		s.hub.unregister <- s
		s.conn.Close()
	}()
	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, _, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logs.Logger.Debug().Err(err).Msg("realtime read error")
			}
			return
		}
	}
}

func (s *Subscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()
	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
