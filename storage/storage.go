package storage

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sessionRecord is one key-value entry of the durable client-side
// store. ExpiresAt of zero means the entry never expires.
type sessionRecord struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte
	ExpiresAt int64
}

// Storage is an embedded sqlite key-value store implementing fiber's
// session Storage interface. It is the durable client state of the
// app: session entries survive restarts but never leave the machine.
type Storage struct {
	db *gorm.DB
}

// Connect opens (or creates) the sqlite database and runs migrations
func Connect(dbName string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, err
	}

	log.Println("Session storage ready:", dbName)
	return &Storage{db: db}, nil
}

// Get returns the value for a key, or nil when absent or expired
func (s *Storage) Get(key string) ([]byte, error) {
	var record sessionRecord
	err := s.db.Where("key = ?", key).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	if record.ExpiresAt > 0 && record.ExpiresAt <= time.Now().Unix() {
		s.db.Delete(&sessionRecord{}, "key = ?", key)
		return nil, nil
	}

	return record.Value, nil
}

// Set stores a value under a key with an optional TTL
func (s *Storage) Set(key string, value []byte, exp time.Duration) error {
	var expiresAt int64
	if exp > 0 {
		expiresAt = time.Now().Add(exp).Unix()
	}

	record := sessionRecord{Key: key, Value: value, ExpiresAt: expiresAt}
	return s.db.Save(&record).Error
}

// Delete removes a key
func (s *Storage) Delete(key string) error {
	return s.db.Delete(&sessionRecord{}, "key = ?", key).Error
}

// Reset removes every entry
func (s *Storage) Reset() error {
	return s.db.Where("1 = 1").Delete(&sessionRecord{}).Error
}

// Close closes the underlying database
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GC deletes expired entries. Run periodically by the session janitor.
func (s *Storage) GC() error {
	return s.db.
		Where("expires_at > 0 AND expires_at <= ?", time.Now().Unix()).
		Delete(&sessionRecord{}).Error
}
