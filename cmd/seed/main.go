package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// Populates the database with sample data for manual testing.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	services := []models.Service{
		{Type: "Cleaning", Description: "Office cleaning", Price: 50.00},
		{Type: "Maintenance", Description: "Building maintenance", Price: 150.00},
		{Type: "Consulting", Description: "Business consulting", Price: 200.00},
		{Type: "IT Support", Description: "Technical support for IT issues", Price: 100.00},
		{Type: "Security", Description: "Security services", Price: 300.00},
		{Type: "Gardening", Description: "Garden maintenance", Price: 80.00},
		{Type: "Catering", Description: "Event catering services", Price: 250.00},
		{Type: "Legal", Description: "Legal consulting", Price: 500.00},
		{Type: "Marketing", Description: "Marketing strategies", Price: 400.00},
		{Type: "Training", Description: "Employee training sessions", Price: 150.00},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}

	var clients []models.Client
	for i := 1; i <= 10; i++ {
		clients = append(clients, models.Client{
			Name:        fmt.Sprintf("Client %d", i),
			PhoneNumber: fmt.Sprintf("123-456-78%02d", i),
		})
	}

	if err := db.Create(&clients).Error; err != nil {
		log.Fatalf("failed to seed clients: %v", err)
	}

	for i, client := range clients {
		address := models.Address{
			ClientID:     client.ID,
			Street:       fmt.Sprintf("%d Elm St", (i+1)*100),
			Neighborhood: fmt.Sprintf("Neighborhood %d", (i+1)%3),
			Reference:    fmt.Sprintf("Reference %d", i+1),
			Number:       fmt.Sprintf("%d", (i+1)*10),
		}
		if err := db.Create(&address).Error; err != nil {
			log.Fatalf("failed to seed addresses: %v", err)
		}
	}

	shifts := []domain.Shift{
		domain.ShiftMorning,
		domain.ShiftAfternoon,
		domain.ShiftEvening,
	}

	today := time.Now().Truncate(24 * time.Hour)

	for i := 0; i < 20; i++ {
		schedule := models.Schedule{
			ClientID:    clients[rand.Intn(len(clients))].ID,
			ServiceID:   services[rand.Intn(len(services))].ID,
			Date:        today.AddDate(0, 0, rand.Intn(60)),
			Shift:       shifts[rand.Intn(len(shifts))].String(),
			Description: fmt.Sprintf("Scheduled job %d", i+1),
		}
		if err := db.Create(&schedule).Error; err != nil {
			log.Fatalf("failed to seed schedules: %v", err)
		}
	}

	log.Println("database seeded")
}
