package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sociofeed/database"
	"sociofeed/feed"
	"sociofeed/handlers"
	"sociofeed/routes"
	"sociofeed/store"
)

func main() {
	log.Println("Starting sociofeed server...")

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}

	var posts store.PostStore
	var users store.UserStore

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("MONGODB_URI not set, using in-memory stores")
		posts = store.NewMemoryPostStore()
		users = store.NewMemoryUserStore()
	} else {
		var dbErr error
		for i := 1; i <= 3; i++ {
			if err := database.ConnectMongo(uri); err != nil {
				dbErr = err
				log.Printf("MongoDB connection attempt %d failed: %v", i, err)
				time.Sleep(2 * time.Second)
				continue
			}
			dbErr = nil
			break
		}
		if dbErr != nil {
			log.Fatal("Failed to connect to MongoDB: ", dbErr)
		}

		posts = store.NewMongoPostStore(database.Posts)
		users = store.NewMongoUserStore(database.Users)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := feed.NewService(posts, users)
	router := routes.SetupRouter(handlers.NewHandler(svc, users))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
	if uri != "" {
		if err := database.DisconnectMongo(); err != nil {
			log.Println("Mongo disconnect error: ", err)
		}
	}

	log.Println("Server stopped")
}
