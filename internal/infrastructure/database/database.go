package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PavaniTiago/socioteam-api/internal/config"
)

// SetupDatabase abre a conexão com o Postgres e configura o pool.
// O schema é mantido fora da API; nenhuma migração é executada aqui.
func SetupDatabase(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined in the environment")
	}

	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := RegisterCallbacks(db, cfg.Timezone); err != nil {
		return nil, fmt.Errorf("failed to register callbacks: %w", err)
	}

	log.Info("database connected",
		zap.Int("max_open_conns", 50),
		zap.String("timezone", cfg.Timezone),
	)
	return db, nil
}
