package routes

import (
	"loveconnect_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes wires the public authentication endpoints.
func RegisterAuthRoutes(router *mux.Router, controller *controllers.AuthController) {
	authRouter := router.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/signup", controller.Signup).Methods("POST")
	authRouter.HandleFunc("/verify", controller.Verify).Methods("GET")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
	authRouter.HandleFunc("/logout", controller.Logout).Methods("POST")
}
