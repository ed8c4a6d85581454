package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoseTorresAguirre/back-game/config"
	"github.com/JoseTorresAguirre/back-game/db"
	"github.com/JoseTorresAguirre/back-game/logger"
	"github.com/JoseTorresAguirre/back-game/repository"
	"github.com/JoseTorresAguirre/back-game/session"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	// Initialize database schema
	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Pick the session backend. Redis shares sessions across instances;
	// memory is fine for a single one.
	var sessions session.Store
	if cfg.SessionBackend == "redis" {
		if err := db.ConnectRedis(cfg); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer db.CloseRedis()
		log.Println("Successfully connected to Redis")
		sessions = session.NewRedisStore(db.RedisClient)
	} else {
		sessions = session.NewMemoryStore()
	}

	userRepo := repository.NewMySQLUserRepository(db.DB)
	nickRepo := repository.NewMySQLNickRepository(db.DB)

	apiHandler := NewAPIHandler(userRepo, nickRepo, sessions, cfg)

	router := NewRouter(apiHandler, cfg)
	server.Handler = router

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s...", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// NewRouter wires the API routes and the CORS policy.
func NewRouter(apiHandler *APIHandler, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	router.Use(corsMiddleware(cfg.AllowedOrigin))

	// OPTIONS is registered on every route so preflight requests reach the
	// CORS middleware instead of falling through to a 405.
	router.HandleFunc("/register", apiHandler.RegisterHandler).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/login", apiHandler.LoginHandler).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/logout", apiHandler.LogoutHandler).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/save-nick", apiHandler.SaveNickHandler).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/get-nick/{user_id:[0-9]+}", apiHandler.GetNickHandler).Methods(http.MethodGet, http.MethodOptions)

	return router
}

// corsMiddleware permits exactly one origin, with credentials. Requests from
// any other origin get no CORS headers at all.
func corsMiddleware(allowedOrigin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == allowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
