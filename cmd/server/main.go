package main

import (
	"log"

	_ "buildtrack/docs"
	"buildtrack/internal/config"
	"buildtrack/internal/server"
)

// @title           BuildTrack API
// @version         1.0
// @description     API for managing construction projects, tasks and teams.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("Server initialization failed: %v", err)
	}

	s.Run()
}
