package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type preferenceModel struct {
	Key       string         `gorm:"column:pref_key;primaryKey;size:512"`
	Value     datatypes.JSON `gorm:"column:value;type:TEXT"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (preferenceModel) TableName() string { return "column_preferences" }

// SQLBackend stores records in one SQL table through gorm.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend opens (creating if needed) the SQLite database at path.
func NewSQLBackend(path string) (*SQLBackend, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open preference database: %w", err)
	}
	return NewSQLBackendFromDB(db)
}

// NewSQLBackendFromDB uses an already opened connection.
func NewSQLBackendFromDB(db *gorm.DB) (*SQLBackend, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db cannot be nil")
	}
	if err := db.AutoMigrate(&preferenceModel{}); err != nil {
		return nil, fmt.Errorf("migrate preference table: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

func (s *SQLBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m preferenceModel
	err := s.db.WithContext(ctx).Where("pref_key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(m.Value), true, nil
}

func (s *SQLBackend) Put(ctx context.Context, key string, value []byte) error {
	m := preferenceModel{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}

func (s *SQLBackend) PutIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	m := preferenceModel{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Close closes the underlying database connection.
func (s *SQLBackend) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
