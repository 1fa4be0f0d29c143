package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/zaqqye/spmb_backend/internal/config"
    "github.com/zaqqye/spmb_backend/internal/models"
)

func DSN(cfg *config.Config) string {
    return fmt.Sprintf(
        "host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
        cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
    )
}

// Connect opens postgres with driver errors translated, so unique violations
// surface as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
    level := gormlogger.Warn
    if cfg.LogLevel == "debug" {
        level = gormlogger.Info
    }
    return gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(level),
    })
}

func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &models.User{},
        &models.RefreshToken{},
        &models.Collection{},
        &models.SchoolProfile{},
        &models.Leadership{},
        &models.Facility{},
        &models.Program{},
        &models.Subject{},
        &models.FAQ{},
        &models.RegistrationWave{},
        &models.RegistrationPathway{},
    )
}
