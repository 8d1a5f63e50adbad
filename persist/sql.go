package persist

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"cafe-admin-api/logger"
	"cafe-admin-api/models"
)

// Entry is one key → JSON document row
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// SQLStore keeps snapshots and the status audit trail in SQLite via gorm
type SQLStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// OpenSQLite opens (or creates) the database file and migrates it
func OpenSQLite(path string, log *logger.Logger) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(
			stdlog.New(log.Writer("DATABASE", logger.LevelWarn), "", 0),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&Entry{},
		&models.OrderStatusHistory{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.LogProcess("DATABASE", "connected and migrated "+path)
	return &SQLStore{db: db, log: log}, nil
}

func (s *SQLStore) Load(ctx context.Context, key string, v any) (bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).First(&e, "entry_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(e.Value), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	s.log.LogDatabase("LOAD", key, fmt.Sprintf("%d bytes", len(e.Value)))
	return true, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	e := Entry{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.log.LogDatabase("SAVE", key, fmt.Sprintf("%d bytes", len(raw)))
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Entry{}, "entry_key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.log.LogDatabase("DELETE", key, "ok")
	return nil
}

func (s *SQLStore) RecordStatusChange(ctx context.Context, h *models.OrderStatusHistory) error {
	if err := s.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("record status change for %s: %w", h.OrderID, err)
	}
	return nil
}

// StatusHistory returns the transitions of one order, oldest first
func (s *SQLStore) StatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	history := []models.OrderStatusHistory{}
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc, id asc").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("status history for %s: %w", orderID, err)
	}
	return history, nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
