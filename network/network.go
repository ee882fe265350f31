package network

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"hopper/protocol"
	"hopper/room"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a gorilla connection to the room.Conn interface. Sends
// come from the room goroutine and the ping loop, hence the mutex.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Serve runs the HTTP server with the websocket endpoint and the room
// list API. Blocks until the listener fails.
func Serve(addr string, m *room.Manager, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler(m, log))
	mux.HandleFunc("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m.ListRooms())
	})
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, mux)
}

func wsHandler(m *room.Manager, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			log.Warn().Err(err).Msg("upgrade failed")
			return
		}

		// Basic timeouts + pong handling keep connections healthy.
		conn.SetReadLimit(1 << 20) // 1MB
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})

		c := &wsConn{conn: conn}

		// First message must be a hello.
		_, raw, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			return
		}
		env, err := protocol.DecodeEnvelope(raw)
		if err != nil || env.T != protocol.MsgHello {
			log.Warn().Msg("expected hello as first message")
			_ = conn.Close()
			return
		}
		hello, err := protocol.DecodePayload[protocol.Hello](env)
		if err != nil {
			_ = conn.Close()
			return
		}

		r, err := m.GetOrCreateRoom(req.URL.Query().Get("room"))
		if err != nil {
			log.Error().Err(err).Msg("room unavailable")
			_ = conn.Close()
			return
		}

		reply := make(chan room.JoinResult, 1)
		r.Inbox <- room.Join{Conn: c, Name: hello.Name, Reply: reply}
		res := <-reply
		if res.PlayerID == "" {
			// seat already taken; room closed the conn
			return
		}
		if b, err := protocol.Encode(protocol.MsgWelcome, res.Welcome); err == nil {
			_ = c.Send(b)
		}

		// Ping loop.
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(25 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := c.ping(); err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		// Read loop: decoded commands go into the room inbox.
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}
			env, err := protocol.DecodeEnvelope(raw)
			if err != nil || env.T != protocol.MsgCommand {
				continue
			}
			cmd, err := protocol.DecodePayload[protocol.Command](env)
			if err != nil {
				continue
			}
			r.Inbox <- room.Command{PlayerID: res.PlayerID, Action: cmd.Action}
		}

		close(done)
		r.Inbox <- room.Leave{PlayerID: res.PlayerID}
	}
}
