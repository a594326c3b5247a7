package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
)

func main() {
	db := config.InitDB()
	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
