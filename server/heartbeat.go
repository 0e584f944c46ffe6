package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const idlePingInterval = 30 * time.Second

// writeWithHeartbeat forwards send to conn until send is closed, writing a
// ping message whenever the connection has been idle for idlePingInterval.
func writeWithHeartbeat(conn *websocket.Conn, session string, send <-chan []byte) error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	ping, _ := json.Marshal(watchMessage{Type: "ping", Session: session})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
