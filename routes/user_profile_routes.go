package routes

import (
	"loveconnect_server/controllers"
	"loveconnect_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes wires the profile and discovery endpoints.
func RegisterUserProfileRoutes(router *mux.Router, controller *controllers.UserProfileController, jwtSecret []byte) {
	profileRouter := router.PathPrefix("/api/profile").Subrouter()
	profileRouter.Use(middleware.RequireAuth(jwtSecret))
	profileRouter.HandleFunc("", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.SaveProfile).Methods("POST")

	discoverRouter := router.PathPrefix("/api/discover").Subrouter()
	discoverRouter.Use(middleware.RequireAuth(jwtSecret))
	discoverRouter.HandleFunc("", controller.Discover).Methods("GET")
}
