package routes

import (
	"loveconnect_server/controllers"
	"loveconnect_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes wires the chat endpoints.
func RegisterChatRoutes(router *mux.Router, controller *controllers.ChatController, jwtSecret []byte) {
	chatRouter := router.PathPrefix("/api/messages").Subrouter()
	chatRouter.Use(middleware.RequireAuth(jwtSecret))

	chatRouter.HandleFunc("/{matchId}", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/{matchId}", controller.HandleSendMessage).Methods("POST")
}
