package archive

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// IsPostgres reports whether dsn names a PostgreSQL database rather than a
// SQLite file.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// OpenDB opens the archive database named by dsn and migrates its schema.
// A postgres:// or postgresql:// URL selects PostgreSQL through pgx; anything
// else is a SQLite file path, created if missing. debug enables SQL logging.
func OpenDB(dsn string, debug bool) (*gorm.DB, error) {
	logMode := logger.Silent
	if debug {
		logMode = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logMode)}

	var dialector gorm.Dialector
	if IsPostgres(dsn) {
		sqlDB, err := openPostgres(dsn)
		if err != nil {
			return nil, err
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	if err := db.AutoMigrate(&SliceRecord{}, &SlicePointRecord{}); err != nil {
		return nil, fmt.Errorf("migrate archive: %w", err)
	}

	return db, nil
}

func openPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres archive: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return db, nil
}
