package main

import (
	"log"
	"os"

	"github.com/astrolog/AstroLog-Backend/src/db"
	"github.com/astrolog/AstroLog-Backend/src/models"
	"github.com/astrolog/AstroLog-Backend/src/routes"
	"github.com/astrolog/AstroLog-Backend/src/seed"
	"github.com/astrolog/AstroLog-Backend/src/web"
)

func main() {

	// Database connection (retries while the database container starts)
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.TypeModel{},
		&models.PropertyModel{},
		&models.PlaceModel{},
		&models.InstrumentModel{},
		&models.ObjectModel{},
		&models.ObservationModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Optional sample catalog
	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(database)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// API router plus the server-rendered dashboard
	router := routes.New(database)
	router.LoadHTMLGlob("templates/*.html")
	web.Register(router, database)

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
