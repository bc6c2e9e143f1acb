package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/esports-registry/hub"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub    *hub.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(h *hub.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: h, logger: logger}
}

// ServeRegistrations streams every registration and deletion event.
func (h *WebSocketHandler) ServeRegistrations(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, hub.RoomRegistrations)
}

// ServeTournament streams the events of /ws/tournaments/{tournamentID}.
func (h *WebSocketHandler) ServeTournament(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}
	h.serve(w, r, hub.TournamentRoom(id))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.String("room", room), slog.Any("error", err))
		return
	}

	client := hub.NewClient(h.hub, conn, room)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
