//picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"log"

	"github.com/Modassir22/dream-home-hub/models" // Import our models so we can auto-migrate schema.

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// GormConfig is shared by InitDB and the test databases so both translate
// unique-index violations into gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn), // Info is very verbose.
		TranslateError: true,
	}
}

// InitDB opens a database connection using the driver specified in config,
// configures GORM, and applies auto-migrations for our models.
func InitDB(cfg *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := GormConfig()

	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" { // Ensure DSN is provided when driver is mysql.
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		// SQLite only needs a file path; foreign keys must be switched on per connection.
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), gormCfg)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		db, err = gorm.Open(sqlserver.Open(cfg.SQLServerDSN), gormCfg)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver) // Fail fast if driver is unsupported.
	}

	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}

	log.Printf("[db] connected: driver=%s", cfg.DBDriver)
	return db
}

// Migrate creates or updates every table the API uses. Order matters for
// foreign keys: users and plots before wishlists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Plot{},
		&models.TeamMember{},
		&models.Testimonial{},
		&models.ContactInfo{},
		&models.Stats{},
		&models.Wishlist{},
	)
}
