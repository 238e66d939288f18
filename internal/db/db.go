package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"menu-server/internal/config"
	"menu-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database, sizes the connection pool and
// migrates the schema.
func Open(cfg config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(slog.Default(), mode)})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Type, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.Type == "sqlite" {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(gdb); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	slog.Info("database connected, schema in sync", "type", cfg.Type)
	return gdb, nil
}

// Migrate creates or updates the dishes table.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Dish{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialector picks the gorm driver for cfg. A non-empty DSN is used verbatim.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "mysql":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
			if cfg.SSL {
				dsn += "&tls=true"
			}
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := cfg.DSN
		if dsn == "" {
			sslMode := "disable"
			if cfg.SSL {
				sslMode = "require"
			}
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
		}
		return postgres.Open(dsn), nil
	case "sqlite", "":
		dsn := cfg.DSN
		if dsn == "" {
			dir := filepath.Dir(cfg.Filename)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database directory %q: %w", dir, err)
			}
			// WAL and a busy timeout let readers proceed during a write.
			dsn = cfg.Filename + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

// slogWriter feeds gorm's text logger into slog at a fixed level.
type slogWriter struct {
	logger *slog.Logger
	level  slog.Level
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Log(context.Background(), w.level, strings.TrimSpace(fmt.Sprintf(format, args...)), "component", "gorm")
}

func newGormLogger(l *slog.Logger, mode string) logger.Interface {
	gormLevel, slogLevel := logger.Warn, slog.LevelWarn
	if mode == "debug" {
		gormLevel, slogLevel = logger.Info, slog.LevelDebug
	}
	return logger.New(slogWriter{logger: l, level: slogLevel}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
