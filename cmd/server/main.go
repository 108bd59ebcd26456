package main

import (
	"log"

	"taskboard/internal/config"
	"taskboard/internal/server"
)

// @title           Taskboard API
// @version         1.0
// @description     Boards, lists and cards with user memberships.

// @host      localhost:3000
// @BasePath  /

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
