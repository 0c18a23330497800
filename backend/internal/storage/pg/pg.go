package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Storage is the persistence-access object handed to every service.
// It wraps a gorm handle so tests can open it over sqlite.
type Storage struct {
	db *gorm.DB
}

// models lists the tables in dependency order for AutoMigrate.
var models = []interface{}{
	&domain.User{},
	&domain.Thread{},
	&domain.Reply{},
	&domain.Like{},
	&domain.Follow{},
}

// New connects to postgres through lib/pq and wraps the pool with gorm.
func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	sqlDB, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	storage, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return storage, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	sslmode := cfg.Private.Pg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Open builds a Storage over any gorm dialector.
func Open(dialector gorm.Dialector) (*Storage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger.Log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return &Storage{db: db}, nil
}

// Migrate creates or updates every table.
func (s *Storage) Migrate() error {
	for _, model := range models {
		if err := s.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T: %w", model, err)
		}
	}
	return nil
}

// Ping is used by the health endpoint.
func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withTx runs fn inside a transaction bound to ctx.
func (s *Storage) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}
