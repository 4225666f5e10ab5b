package routes

import (
	"loveconnect_server/controllers"
	"loveconnect_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes wires the match lifecycle endpoints.
func RegisterMatchRoutes(router *mux.Router, controller *controllers.MatchController, jwtSecret []byte) {
	matchRouter := router.PathPrefix("/api/match").Subrouter()
	matchRouter.Use(middleware.RequireAuth(jwtSecret))

	matchRouter.HandleFunc("", controller.ListMatches).Methods("GET")
	matchRouter.HandleFunc("/request", controller.RequestMatch).Methods("POST")
	matchRouter.HandleFunc("/respond", controller.RespondMatch).Methods("POST")
	matchRouter.HandleFunc("/connections", controller.GetConnections).Methods("GET")
}
