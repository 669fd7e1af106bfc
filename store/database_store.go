package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dnsvet/dnsvet/config"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"

	retry "github.com/avast/retry-go/v4"
	"golang.org/x/net/publicsuffix"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type analysisEntry struct {
	ID            uint      `gorm:"primarykey"`
	Name          string    `gorm:"index:idx_name_analyzed_at"`
	AnalyzedAt    time.Time `gorm:"index:idx_name_analyzed_at"`
	Stub          bool
	EffectiveTLDP string
	Payload       string
}

// DatabaseStore keeps analysis records in a SQL database via gorm
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore opens the configured SQL backend, retrying transient
// connection failures, and migrates the schema
func NewDatabaseStore(cfg *config.StoreConfig) (*DatabaseStore, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB

	err = retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(dialector, &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})

			return err
		},
		retry.Attempts(uint(cfg.ConnectionAttempts)),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(cfg.ConnectionCooldown.ToDuration()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.PrefixedLog("database_store").Warnf("can't connect to database, retrying attempt %d: %s", n+1, err)
		}))
	if err != nil {
		return nil, fmt.Errorf("can't create database connection: %w", err)
	}

	if err := db.AutoMigrate(&analysisEntry{}); err != nil {
		return nil, fmt.Errorf("can't perform auto migration: %w", err)
	}

	return &DatabaseStore{db: db}, nil
}

func openDialector(cfg *config.StoreConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case config.StoreTypeSqlite:
		return sqlite.Open(cfg.Target), nil
	case config.StoreTypeMysql:
		return mysql.Open(cfg.Target), nil
	case config.StoreTypePostgresql:
		return postgres.Open(cfg.Target), nil
	}

	return nil, fmt.Errorf("'%s' is not a SQL store type", cfg.Type)
}

func newDatabaseStore(dialector gorm.Dialector) (*DatabaseStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&analysisEntry{}); err != nil {
		return nil, err
	}

	return &DatabaseStore{db: db}, nil
}

// FetchLatest implements `AnalysisStore`
func (d *DatabaseStore) FetchLatest(ctx context.Context, name model.DomainName) (*model.AnalysisRecord, error) {
	var entry analysisEntry

	err := d.db.WithContext(ctx).
		Where("name = ?", name.Fqdn()).
		Order("analyzed_at desc").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("can't query analysis record for '%s': %w", name, err)
	}

	var record model.AnalysisRecord
	if err := json.Unmarshal([]byte(entry.Payload), &record); err != nil {
		return nil, fmt.Errorf("can't decode analysis record for '%s': %w", name, err)
	}

	return &record, nil
}

// Insert implements `AnalysisStore`
func (d *DatabaseStore) Insert(ctx context.Context, record *model.AnalysisRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("can't encode analysis record for '%s': %w", record.Name, err)
	}

	eTLD, _ := publicsuffix.EffectiveTLDPlusOne(record.Name.String())

	err = d.db.WithContext(ctx).Create(&analysisEntry{
		Name:          record.Name.Fqdn(),
		AnalyzedAt:    record.AnalyzedAt,
		Stub:          record.Stub,
		EffectiveTLDP: eTLD,
		Payload:       string(payload),
	}).Error
	if err != nil {
		return fmt.Errorf("can't persist analysis record for '%s': %w", record.Name, err)
	}

	return nil
}

// Close implements `AnalysisStore`
func (d *DatabaseStore) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
