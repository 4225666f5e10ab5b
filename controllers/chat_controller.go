package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"loveconnect_server/middleware"
	"loveconnect_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles reading and sending chat messages.
type ChatController struct {
	ChatService *services.ChatService
}

func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// HandleGetMessages returns a match's messages in creation order.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())
	matchID := mux.Vars(r)["matchId"]

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultMessageLimit
	}

	messages, err := c.ChatService.GetMessages(r.Context(), viewerID, matchID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleSendMessage appends a message to an accepted match.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.UserID(r.Context())
	matchID := mux.Vars(r)["matchId"]

	var request struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body."})
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), viewerID, matchID, request.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}
