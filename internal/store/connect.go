package store

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a database based on the URL scheme:
// postgres://, postgresql://, mysql:// or sqlite://
func Connect(databaseURL string, log gormlogger.Interface) (*gorm.DB, error) {
	cfg := &gorm.Config{}
	if log != nil {
		cfg.Logger = log
	}

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return gorm.Open(postgres.Open(databaseURL), cfg)
	case strings.HasPrefix(databaseURL, "mysql://"):
		return gorm.Open(mysql.Open(mysqlDSN(strings.TrimPrefix(databaseURL, "mysql://"))), cfg)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return OpenSQLite(strings.TrimPrefix(databaseURL, "sqlite://"), cfg)
	}
	return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
}

// OpenSQLite opens a SQLite database with foreign key enforcement enabled.
// In-memory databases are pinned to one connection so every query sees the
// same schema.
func OpenSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.Open(path+sep+"_foreign_keys=on"), cfg)
	if err != nil {
		return nil, err
	}

	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// mysqlDSN converts user:pass@host:port/db?opts into the driver's DSN form
// user:pass@tcp(host:port)/db?opts and makes sure time columns are parsed.
func mysqlDSN(rest string) string {
	creds, hostAndDB := "", rest
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		creds, hostAndDB = rest[:at+1], rest[at+1:]
	}

	host, dbAndOpts := hostAndDB, ""
	if slash := strings.Index(hostAndDB, "/"); slash >= 0 {
		host, dbAndOpts = hostAndDB[:slash], hostAndDB[slash:]
	}
	if !strings.HasPrefix(host, "tcp(") && !strings.HasPrefix(host, "unix(") {
		host = "tcp(" + host + ")"
	}

	dsn := creds + host + dbAndOpts
	if !strings.Contains(dsn, "parseTime=") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}
	return dsn
}
