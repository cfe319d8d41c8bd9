//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/server"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/helpers"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.New()
	r.Use(gin.Recovery())

	// Loads .env and initializes the logger
	server.InitializeHandlers()
	defer logger.Sync()

	server.InitializeRoutes(r)

	addr := ":" + helpers.GetEnv("PORT", "8000")
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("Dashboard starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	server.Shutdown()
}
