package routes

import (
	"loveconnect_server/controllers"
	"loveconnect_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterS3Routes wires the presigned photo URL endpoints.
func RegisterS3Routes(router *mux.Router, controller *controllers.S3Controller, jwtSecret []byte) {
	s3Router := router.PathPrefix("/api/photos").Subrouter()
	s3Router.Use(middleware.RequireAuth(jwtSecret))

	s3Router.HandleFunc("/upload-url", controller.GetUploadURL).Methods("GET")
	s3Router.HandleFunc("/read-url", controller.GetReadURL).Methods("GET")
}
