package database

import (
	"fmt"
	"log"
	"time"

	"bankoffice/internal/config"
	"bankoffice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Branch{},
		&models.AccountType{},
		&models.Customer{},
		&models.Account{},
		&models.Transaction{},
		&models.Beneficiary{},
		&models.DocType{},
		&models.Document{},
	)
}

// EnsureSchema guarantees the schema exists. When SQL migrations ran they
// own the schema; otherwise GORM builds it from the models so a fresh
// deploy never starts against an empty database.
func (db *DB) EnsureSchema(migrationsApplied bool) error {
	if migrationsApplied {
		return nil
	}

	log.Println("No SQL migrations applied, running GORM AutoMigrate")
	return db.AutoMigrate()
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_customer_id ON accounts(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_is_active ON accounts(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_source_acc ON transactions(source_acc)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_dest_acc ON transactions(dest_acc)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_time ON transactions(time)",
		"CREATE INDEX IF NOT EXISTS idx_beneficiaries_account_id ON beneficiaries(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_beneficiaries_is_active ON beneficiaries(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_customers_user_id ON customers(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_customers_is_active ON customers(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_documents_customer_id ON documents(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	applied, err := RunMigrationsIfEnabled(sqlDB)
	if err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		applied = false
	}

	if err := db.EnsureSchema(applied); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
