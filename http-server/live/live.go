package live

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"teacher-salary/internal/middleware/embed"
	"teacher-salary/internal/salary"
	"teacher-salary/internal/service/calculator"
)

// maxMessageSize bounds one inbound change list.
const maxMessageSize = 64 << 10

type errorMessage struct {
	Error string `json:"error"`
}

// NewUpgrader accepts browser connections from the allowed origins only; an
// empty list accepts any origin.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return len(allowed) == 0 || origin == "" || allowed[origin]
		},
	}
}

// Live keeps one selection per connection. The first frame is the empty
// state; every inbound frame is a change list and is answered with the new
// state, or with an error that leaves the selection as it was.
func Live(log *slog.Logger, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.live.Live"

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug("websocket upgrade failed", slog.String("op", op), slog.String("error", err.Error()))
			return
		}
		defer conn.Close()

		conn.SetReadLimit(maxMessageSize)

		log.Debug("live session opened", slog.String("op", op), slog.Bool("embedded", embed.IsEmbedded(r.Context())))

		var sel salary.Selection
		if err := writeJSON(conn, calculator.NewState("", sel)); err != nil {
			return
		}

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Error("live session read failed", slog.String("op", op), slog.String("error", err.Error()))
				}
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			var reqs []salary.ChangeRequest
			if err := json.Unmarshal(data, &reqs); err != nil {
				if writeJSON(conn, errorMessage{Error: "invalid JSON"}) != nil {
					return
				}
				continue
			}

			changes, err := salary.DecodeChanges(reqs)
			if err != nil {
				if writeJSON(conn, errorMessage{Error: err.Error()}) != nil {
					return
				}
				continue
			}

			sel = salary.Apply(sel, changes...)
			if err := writeJSON(conn, calculator.NewState("", sel)); err != nil {
				log.Error("live session write failed", slog.String("op", op), slog.String("error", err.Error()))
				return
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
