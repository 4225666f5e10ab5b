package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewServer builds the realtime relay. Clients join a room per match and
// messages sent to a room are fanned out to everyone in it.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		s.Join(matchID)
		log.Printf("📩 Socket %s joined room %s", s.ID(), matchID)
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		s.Leave(matchID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, payload map[string]interface{}) {
		matchID, _ := payload["matchId"].(string)
		if matchID == "" {
			log.Println("⚠️ sendMessage without matchId, dropping")
			return
		}
		server.BroadcastToRoom("/", matchID, "newMessage", payload)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("🔌 Socket disconnected:", s.ID(), reason)
	})

	return server
}
