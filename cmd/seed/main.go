package main

import (
	"fmt"
	"log"
	"os"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/vantagevc/dealflow-backend/internal/config"
	"github.com/vantagevc/dealflow-backend/internal/migration"
)

// Seeds the demo users (admin/analyst/partner, password "12345678").
// Safe to re-run; existing accounts are left alone.
func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}

	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mc := mysqldriver.Config{
		User:                 cfg.Database.User,
		Passwd:               cfg.Database.Password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port),
		DBName:               cfg.Database.Name,
		ParseTime:            true,
		Loc:                  time.UTC,
		AllowNativePasswords: true,
	}

	db, err := gorm.Open(mysql.Open(mc.FormatDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := migration.SeedUsers(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seeded users: admin@dealflow.dev (admin), analyst@dealflow.dev (analyst), partner@dealflow.dev (partner). Password: 12345678")
}
