package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"loveconnect_server/controllers"
	"loveconnect_server/routes"
	"loveconnect_server/services"
	"loveconnect_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize AWS clients
	log.Println("Initializing DynamoDB client...")
	awsConfig := services.LoadAWSConfig()
	dynamoClient := services.InitializeDynamoDBClient(awsConfig)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	jwtSecret := []byte(getEnv("JWT_SECRET", "dev-secret"))
	clientURL := getEnv("CLIENT_URL", "http://localhost:5173")

	// Initialize Services
	emailSender := services.NewPostmarkSender(os.Getenv("POSTMARK_SERVER_TOKEN"), os.Getenv("EMAIL_FROM"))
	userService := &services.UserService{
		Dynamo:    dynamoService,
		Email:     emailSender,
		JWTSecret: jwtSecret,
		ClientURL: clientURL,
	}
	profileService := services.NewProfileService(dynamoService)
	discoveryService := &services.DiscoveryService{}
	matchService := &services.MatchService{Dynamo: dynamoService, Profiles: profileService}
	chatService := &services.ChatService{Dynamo: dynamoService, Matches: matchService}
	s3Service := services.NewS3Service(awsConfig, getEnv("S3_BUCKET_NAME", "loveconnect-photos"))

	// Set up the server port
	port := getEnv("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to LoveConnect")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, controllers.NewAuthController(userService))
	routes.RegisterUserProfileRoutes(r, controllers.NewUserProfileController(profileService, discoveryService), jwtSecret)
	routes.RegisterMatchRoutes(r, controllers.NewMatchController(matchService), jwtSecret)
	routes.RegisterChatRoutes(r, controllers.NewChatController(chatService), jwtSecret)
	routes.RegisterS3Routes(r, controllers.NewS3Controller(s3Service), jwtSecret)

	// Mount the realtime relay
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{clientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
