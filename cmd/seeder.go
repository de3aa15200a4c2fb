package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hrportal/internal/auth"
	employeeDatamodel "hrportal/internal/core/datamodel/employee"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a bootstrap admin account",
	Long:  `Seed the database with an initial admin employee so the portal can be administered after a fresh migration.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		password := seedPassword
		if password == "" {
			log.Fatal("a password is required: pass --password")
		}

		hash, err := auth.HashPassword(password, cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		admin := employeeDatamodel.Employee{
			ID:           1,
			FirstName:    "Portal",
			LastName:     "Admin",
			DateOfBirth:  time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
			Email:        "admin@hrportal.local",
			Street:       "1 Main St",
			City:         "Springfield",
			State:        "IL",
			ZIP:          62701,
			PasswordHash: hash,
			IsAdmin:      true,
		}

		var existing employeeDatamodel.Employee
		err = db.Where("id = ?", admin.ID).First(&existing).Error
		switch {
		case err == nil:
			fmt.Println("admin employee already exists, skipping")
			return
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			log.Fatalf("failed to check for existing admin: %v", err)
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to insert admin employee: %v", err)
		}

		fmt.Printf("Seeded admin employee %d (%s)\n", admin.ID, admin.Email)
	},
}
