package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"resume_backend/internal/app/config"
	authentity "resume_backend/internal/feature/auth/domain/entity"
	resumeentity "resume_backend/internal/feature/resume/domain/entity"
)

// Open はPostgreSQLへのgorm接続を確立します。
// 起動直後のDB未準備に備えて60秒までリトライします。
func Open(cfg config.DatabaseConfig) *gorm.DB {
	dsn := cfg.DSN()

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.Migrate {
		// マイグレーション（Account, AccountProfile, Resume）
		if err := conn.AutoMigrate(
			&authentity.Account{},
			&authentity.AccountProfile{},
			&resumeentity.Resume{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}
