package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sectors and users for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		sectors := []struct {
			Name       string
			Privileges string
		}{
			{"Administration", "ADMIN"},
			{"Commercial", "COMMERCIAL"},
			{"Design Studio", "DESIGNER"},
			{"Finance", "FINANCIAL"},
			{"Logistics", "LOGISTIC"},
			{"Production A", "PRODUCTION"},
			{"Production B", "BASIC"},
			{"Warehouse", "WAREHOUSE"},
			{"Human Resources", "HUMAN_RESOURCES"},
			{"Maintenance", "MAINTENANCE"},
		}

		sectorIDs := map[string]int64{}
		for _, s := range sectors {
			var id int64
			row := db.Raw("SELECT id FROM sectors WHERE name = ?", s.Name).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec(
					"INSERT INTO sectors (name, privileges, created_at, updated_at) VALUES (?, ?, now(), now())",
					s.Name, s.Privileges,
				).Error; err != nil {
					log.Fatalf("failed to insert sector %s: %v", s.Name, err)
				}
				row = db.Raw("SELECT id FROM sectors WHERE name = ?", s.Name).Row()
				if err := row.Scan(&id); err != nil {
					log.Fatalf("failed to read back sector %s: %v", s.Name, err)
				}
				fmt.Println("Seeded sector:", s.Name)
			}
			sectorIDs[s.Name] = id
		}

		users := []struct {
			Email  string
			Name   string
			Sector string
		}{
			{"admin@ankaa.dev", "Administrator", "Administration"},
			{"sales@ankaa.dev", "Sales Rep", "Commercial"},
			{"designer@ankaa.dev", "Designer", "Design Studio"},
			{"finance@ankaa.dev", "Accountant", "Finance"},
			{"stock@ankaa.dev", "Stock Keeper", "Warehouse"},
			{"leader@ankaa.dev", "Line Leader", "Production B"},
		}

		userIDs := map[string]int64{}
		for _, u := range users {
			var id int64
			row := db.Raw("SELECT id FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&id); err != nil {
				if err := db.Exec(
					"INSERT INTO users (email, name, password_hash, sector_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
					u.Email, u.Name, string(hash), sectorIDs[u.Sector],
				).Error; err != nil {
					log.Fatalf("failed to insert user %s: %v", u.Email, err)
				}
				row = db.Raw("SELECT id FROM users WHERE email = ?", u.Email).Row()
				if err := row.Scan(&id); err != nil {
					log.Fatalf("failed to read back user %s: %v", u.Email, err)
				}
				fmt.Println("Seeded user:", u.Email)
			}
			userIDs[u.Email] = id
		}

		// The line leader manages Production A; leadership comes from the
		// sector's manager_id, not from a privilege.
		if err := db.Exec(
			"UPDATE sectors SET manager_id = ?, updated_at = now() WHERE name = ? AND (manager_id IS NULL OR manager_id <> ?)",
			userIDs["leader@ankaa.dev"], "Production A", userIDs["leader@ankaa.dev"],
		).Error; err != nil {
			log.Fatalf("failed to assign sector manager: %v", err)
		}
		fmt.Println("Assigned leader@ankaa.dev as manager of Production A")

		fmt.Println("Seeding complete.")
	},
}
