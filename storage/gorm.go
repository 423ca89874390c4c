package storage

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobEntry is the backing row for the gorm Store: one JSON document per
// logical key.
type BlobEntry struct {
	Key   string `gorm:"primaryKey;type:text"`
	Value []byte `gorm:"type:jsonb;not null"`
}

func (BlobEntry) TableName() string {
	return "blob_entries"
}

// Gorm persists blobs in a postgres table. Each Set rewrites the whole value
// under its key, mirroring the localStorage semantics of the original app.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(key string) ([]byte, bool) {
	var entry BlobEntry
	err := g.db.First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("blob store: read %q: %v", key, err)
		}
		return nil, false
	}
	return entry.Value, true
}

func (g *Gorm) Set(key string, value []byte) error {
	entry := BlobEntry{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (g *Gorm) Remove(key string) error {
	return g.db.Delete(&BlobEntry{}, "key = ?", key).Error
}

func (g *Gorm) Clear() error {
	return g.db.Where("1 = 1").Delete(&BlobEntry{}).Error
}

// Keys returns the stored keys under prefix.
func (g *Gorm) Keys(prefix string) []string {
	var keys []string
	g.db.Model(&BlobEntry{}).
		Where("key LIKE ?", strings.ReplaceAll(prefix, "%", `\%`)+"%").
		Pluck("key", &keys)
	return keys
}
