package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tenanta/backend/internal/api/handler"
	"tenanta/backend/internal/config"
	"tenanta/backend/internal/eventhub"
	"tenanta/backend/internal/registry"
)

func main() {
	log.Println("Starting Tenanta Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 1. Event hub: every registry mutation is fanned out to connected
	// websocket clients so they can re-read.
	hub := eventhub.NewManager()
	go hub.Run()

	// 2. Registries: the in-memory state of the whole system. Lost on exit.
	registries := registry.New(hub)
	if cfg.SeedDemo {
		registry.SeedDemoData(registries)
	}

	// 3. Gin routing.
	r := gin.Default()
	h := handler.NewHandler(registries, hub)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	log.Printf("INFO: listening on %s", cfg.ListenAddr)
	log.Fatal(server.ListenAndServe())
}
