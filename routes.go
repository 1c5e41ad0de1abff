package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Anal-Rauth/Task-Manager/handlers"
	"github.com/Anal-Rauth/Task-Manager/observability"
	"github.com/Anal-Rauth/Task-Manager/utilities"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func LoadRoutes(h *handlers.Handler) {
	utilities.InitLogger()

	r := mux.NewRouter()

	r.Use(h.LoggingMiddleware)

	// --- Auth pages and endpoints ---
	r.HandleFunc("/login", h.SessionGate(h.LoginPage)).Methods("GET")
	r.HandleFunc("/login", h.LoginSubmit).Methods("POST")
	r.HandleFunc("/register", h.SessionGate(h.RegisterPage)).Methods("GET")
	r.HandleFunc("/register", h.RegisterSubmit).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")

	// --- Task list and form actions (actions check the session themselves
	// and answer 401, pages go through the gate and redirect) ---
	r.HandleFunc("/", h.SessionGate(h.ListPage)).Methods("GET")
	r.HandleFunc("/tasks/create", h.CreateTask).Methods("POST")
	r.HandleFunc("/tasks/update", h.UpdateTask).Methods("POST")
	r.HandleFunc("/tasks/delete", h.DeleteTask).Methods("POST")
	r.HandleFunc("/tasks/toggle", h.ToggleTask).Methods("POST")

	// --- Operational endpoints ---
	r.HandleFunc("/healthz", handlers.HealthHandler).Methods("GET")
	r.Handle("/metrics", observability.MetricsHandler()).Methods("GET")

	// CORS configuration
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS not set, allowing all origins ('*'). Set it for production.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configuring CORS with allowed origins: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
