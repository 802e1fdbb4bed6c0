package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"victory-pos/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotKey is the fixed key the application document lives under.
const snapshotKey = "victory_pos_v1"

type snapshotRow struct {
	Key       string `gorm:"primaryKey;size:64"`
	Document  []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// GormStorage persists the snapshot as a single row in MySQL. The document
// stays the same JSON form as FileStorage; the database only provides the
// durable home for it.
type GormStorage struct {
	db *gorm.DB
}

// OpenGormStorage connects to MySQL, waiting for the database to be ready.
func OpenGormStorage(dsn string) (*GormStorage, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots table: %w", err)
	}
	return &GormStorage{db: db}, nil
}

func (g *GormStorage) Load() (models.Snapshot, error) {
	var row snapshotRow
	err := g.db.First(&row, "`key` = ?", snapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(row.Document, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (g *GormStorage) Save(snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	row := snapshotRow{Key: snapshotKey, Document: data, UpdatedAt: time.Now()}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
