package journey

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	subMu       sync.Mutex
)

// sessionEvent is pushed to every subscriber of a planning session after
// each mutation so the UI can refresh.
type sessionEvent struct {
	Action string `json:"action"`
	Date   string `json:"date,omitempty"`
	ItemID string `json:"itemId,omitempty"`
}

// GET /ws/journey/:sessionid
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("sessionid")
	if _, ok := h.Reg.Get(sessionID); !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	subMu.Lock()
	subscribers[sessionID] = append(subscribers[sessionID], conn)
	subMu.Unlock()

	// Keep the connection open until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	subMu.Lock()
	conns := subscribers[sessionID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[sessionID] = newList
	subMu.Unlock()

	conn.Close()
}

func broadcast(sessionID string, event sessionEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	subMu.Lock()
	defer subMu.Unlock()

	conns := subscribers[sessionID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[sessionID] = newList
}
