// Command bootstrap-admin provisions the root ADMIN developer and
// prints the raw API key once. Run it against an empty database before
// first deploy.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"appforge.backend/internal/config"
	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/repositories"
	"appforge.backend/pkg/crypto"
)

var openBootstrapDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

func main() {
	name := flag.String("name", "root-admin", "developer name")
	flag.Parse()

	if err := run(*name, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(name string, out *os.File) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	hasher, err := crypto.NewKeyHasher(cfg.Security.APIKeyHMACSecretB64)
	if err != nil {
		return fmt.Errorf("invalid api key hmac secret: %w", err)
	}

	db, err := openBootstrapDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to init sql db: %w", err)
	}
	defer sqlDB.Close()

	rawKey, err := crypto.GenerateAPIKey()
	if err != nil {
		return fmt.Errorf("failed to generate api key: %w", err)
	}

	dev := &entities.Developer{
		Name:       name,
		Role:       entities.DevRoleAdmin,
		APIKeyHash: hasher.Fingerprint(rawKey),
		IsActive:   true,
	}

	devRepo := repositories.NewDeveloperRepository(db)
	if err := devRepo.Create(context.Background(), dev); err != nil {
		return fmt.Errorf("failed to create admin developer: %w", err)
	}

	payload, _ := json.MarshalIndent(map[string]string{
		"developerId": dev.ID.String(),
		"apiKey":      rawKey,
	}, "", "  ")
	fmt.Fprintln(out, string(payload))
	return nil
}
