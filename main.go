package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"farmhub/backend/database"
	"farmhub/backend/handlers"
	"farmhub/backend/middleware"
	"farmhub/backend/services"
	"farmhub/backend/store"

	"github.com/gorilla/mux"
)

func main() {
	// Parse command line flags
	setupOnly := flag.Bool("setup-only", false, "Initialize the local database and exit")
	flag.Parse()

	// Check environment
	isDevelopment := os.Getenv("APP_ENV") != "production" &&
		os.Getenv("ENVIRONMENT") != "production" &&
		os.Getenv("ENV") != "production"

	if isDevelopment {
		log.Println("Running in development environment")
	}

	// Initialize the local database (users, saved filters, program targets)
	if err := database.InitDB(); err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if *setupOnly {
		log.Println("Local database setup completed successfully. Exiting.")
		return
	}

	// Initialize Firebase Admin SDK for auth token verification
	log.Println("Initializing Firebase Admin SDK...")
	if err := middleware.InitializeFirebase(); err != nil {
		log.Printf("Warning: Failed to initialize Firebase: %v", err)
		log.Println("Auth token verification will be disabled!")
	}

	// Connect to the record store
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Dashboard reads are served from snapshots at most 30 seconds old
	services.InitAnalytics(store.Records, 30*time.Second)
	defer services.StopAnalytics()

	// Create router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.EnableCORS)

	// Register routes with both direct paths and /api prefix to maintain compatibility
	registerRoutes(r)
	apiRouter := r.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter)

	// Serve static files from the "dist" directory for the frontend
	fs := http.FileServer(http.Dir("./dist"))
	r.PathPrefix("/assets/").Handler(http.StripPrefix("", fs))
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/assets/") {
			log.Printf("Serving index.html for path: %s", r.URL.Path)
		}
		http.ServeFile(w, r, "./dist/index.html")
	}).Methods("GET")

	// Configure the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Start the server
	log.Printf("Starting server on port %s...", port)
	log.Fatal(srv.ListenAndServe())
}

// registerRoutes sets up all API routes
func registerRoutes(r *mux.Router) {
	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	// Create a subrouter for authenticated routes
	protectedRouter := r.PathPrefix("").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware)

	// Mutating routes additionally require the chief administrator role
	adminRouter := protectedRouter.PathPrefix("").Subrouter()
	adminRouter.Use(middleware.RequireChiefAdmin)

	// Record collections
	registerResource(protectedRouter, adminRouter, "livestock-farmers", handlers.LivestockFarmers)
	registerResource(protectedRouter, adminRouter, "fodder-farmers", handlers.FodderFarmers)
	registerResource(protectedRouter, adminRouter, "boreholes", handlers.Boreholes)
	registerResource(protectedRouter, adminRouter, "vaccinations", handlers.Vaccinations)
	registerResource(protectedRouter, adminRouter, "trainings", handlers.Trainings)
	registerResource(protectedRouter, adminRouter, "offtakes", handlers.Offtakes)
	registerResource(protectedRouter, adminRouter, "onboardings", handlers.Onboardings)

	// Dashboard analytics
	protectedRouter.HandleFunc("/dashboard", handlers.GetDashboard).Methods("GET")
	protectedRouter.HandleFunc("/targets", handlers.GetProgramTargets).Methods("GET")
	adminRouter.HandleFunc("/targets", handlers.UpdateProgramTarget).Methods("PUT")

	// User routes
	protectedRouter.HandleFunc("/users", handlers.GetUsers).Methods("GET")
	protectedRouter.HandleFunc("/users/sync", handlers.SyncFirebaseUser).Methods("POST")
	protectedRouter.HandleFunc("/roles", handlers.SetUserRole).Methods("POST")
	protectedRouter.HandleFunc("/roles/{userId}", handlers.GetUserRole).Methods("GET")

	// Saved filters routes
	protectedRouter.HandleFunc("/filters", handlers.GetSavedFilters).Methods("GET")
	protectedRouter.HandleFunc("/filters", handlers.CreateSavedFilter).Methods("POST")
	protectedRouter.HandleFunc("/filters/{id}", handlers.GetSavedFilter).Methods("GET")
	protectedRouter.HandleFunc("/filters/{id}", handlers.UpdateSavedFilter).Methods("PUT")
	protectedRouter.HandleFunc("/filters/{id}", handlers.DeleteSavedFilter).Methods("DELETE")
}

// registerResource wires one record collection's routes. Reads go through the
// authenticated router, writes through the chief-admin router. The static
// paths are registered before "/{id}" so they match first.
func registerResource(protected, admin *mux.Router, path string, res handlers.Resource) {
	protected.HandleFunc("/"+path, res.List).Methods("GET")
	protected.HandleFunc("/"+path+"/export", res.Export).Methods("GET")
	admin.HandleFunc("/"+path, res.Create).Methods("POST")
	admin.HandleFunc("/"+path+"/batch-delete", res.BatchDelete).Methods("POST")
	protected.HandleFunc("/"+path+"/{id}", res.Get).Methods("GET")
	admin.HandleFunc("/"+path+"/{id}", res.Update).Methods("PUT")
	admin.HandleFunc("/"+path+"/{id}", res.Delete).Methods("DELETE")
}
