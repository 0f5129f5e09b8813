package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"wastetrack/internal/config"
	"wastetrack/internal/database"
	"wastetrack/internal/models"
	"wastetrack/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	teamCount        = 3
	employeesPerTeam = 5
	maxLogsPerUser   = 15
	memberPassword   = "password123"
)

var logDescriptions = []string{
	"Packaging from the loading dock",
	"Broken pallet wrap",
	"Office paper collection",
	"Canteen scraps",
	"Scrapped fittings",
	"",
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	wipe(ctx, mongoDB.Database)
	seedAdmin(ctx, mongoDB.Database, cfg)
	teams := seedTeams(ctx, mongoDB.Database)
	users := seedMembers(ctx, mongoDB.Database, teams)
	seedWasteLogs(ctx, mongoDB.Database, users)

	log.Println("Seed completed successfully!")
}

// wipe clears all application collections so the seed is repeatable.
func wipe(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{"users", "teams", "waste_logs", "reports"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to wipe %s: %v", name, err)
		}
	}
	log.Println("Wiped existing data")
}

func seedAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config) {
	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	admin := models.User{
		Username:       cfg.AdminUsername,
		Email:          cfg.AdminEmail,
		FullName:       "System Administrator",
		HashedPassword: hashed,
		Role:           models.RoleAdmin,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Created admin user %q", cfg.AdminUsername)
}

func seedTeams(ctx context.Context, db *mongo.Database) []models.Team {
	teams := make([]models.Team, 0, teamCount)
	now := time.Now()
	for i := 1; i <= teamCount; i++ {
		team := models.Team{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("Team %d", i),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := db.Collection("teams").InsertOne(ctx, team); err != nil {
			log.Fatalf("Failed to seed team %q: %v", team.Name, err)
		}
		teams = append(teams, team)
	}
	log.Printf("Created %d teams", len(teams))
	return teams
}

// seedMembers creates one manager and a handful of employees per team.
func seedMembers(ctx context.Context, db *mongo.Database, teams []models.Team) []models.User {
	hashed, err := auth.HashPassword(memberPassword)
	if err != nil {
		log.Fatalf("Failed to hash member password: %v", err)
	}

	var users []models.User
	now := time.Now()
	for i, team := range teams {
		teamID := team.ID
		manager := models.User{
			ID:             primitive.NewObjectID(),
			Username:       fmt.Sprintf("team_%d_manager", i+1),
			Email:          fmt.Sprintf("manager%d@example.com", i+1),
			FullName:       fmt.Sprintf("Manager of %s", team.Name),
			HashedPassword: hashed,
			Role:           models.RoleManager,
			TeamID:         &teamID,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		users = append(users, manager)

		for j := 1; j <= employeesPerTeam; j++ {
			employee := models.User{
				ID:             primitive.NewObjectID(),
				Username:       fmt.Sprintf("team_%d_employee_%d", i+1, j),
				Email:          fmt.Sprintf("employee%d_%d@example.com", i+1, j),
				FullName:       fmt.Sprintf("Employee %d of %s", j, team.Name),
				HashedPassword: hashed,
				Role:           models.RoleEmployee,
				TeamID:         &teamID,
				IsActive:       true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			users = append(users, employee)
		}
	}

	docs := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = u
	}
	if _, err := db.Collection("users").InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed members: %v", err)
	}
	log.Printf("Created %d team members", len(users))
	return users
}

// seedWasteLogs records a random batch of recent entries for each member.
func seedWasteLogs(ctx context.Context, db *mongo.Database, users []models.User) {
	var docs []interface{}
	for _, user := range users {
		if user.TeamID == nil {
			continue
		}
		for n := rand.Intn(maxLogsPerUser + 1); n > 0; n-- {
			createdAt := time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour)
			docs = append(docs, models.WasteLog{
				ID:          primitive.NewObjectID(),
				WasteType:   models.WasteTypes[rand.Intn(len(models.WasteTypes))],
				WeightKg:    float64(rand.Intn(500)+1) / 10,
				Description: logDescriptions[rand.Intn(len(logDescriptions))],
				TeamID:      *user.TeamID,
				CreatedByID: user.ID,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			})
		}
	}

	if len(docs) == 0 {
		log.Println("No waste logs generated")
		return
	}
	if _, err := db.Collection("waste_logs").InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed waste logs: %v", err)
	}
	log.Printf("Created %d waste logs", len(docs))
}
