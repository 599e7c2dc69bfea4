package gallery

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type galleryImage struct {
	Id        int       `gorm:"primaryKey"`
	URL       string    `gorm:"column:url;type:varchar(500);not null"`
	ThumbURL  string    `gorm:"column:thumb_url;type:varchar(500)"`
	Prompt    string    `gorm:"column:prompt;type:varchar(2000)"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (galleryImage) TableName() string {
	return "gallery_image"
}

// MySQLStore persists records one row per image and lets the database do
// the newest-first ordering.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(db *gorm.DB) (*MySQLStore, error) {
	err := db.AutoMigrate(&galleryImage{})
	if err != nil {
		return nil, err
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Append(ctx context.Context, img Image) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now()
	}
	record := galleryImage{
		URL:       img.URL,
		ThumbURL:  img.ThumbURL,
		Prompt:    img.Prompt,
		CreatedAt: img.CreatedAt,
	}
	err := s.db.WithContext(ctx).Model(&galleryImage{}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// List projects url/thumb_url/prompt only; created_at orders the result
// but is not returned to callers.
func (s *MySQLStore) List(ctx context.Context) ([]Image, error) {
	var records []galleryImage
	err := s.db.WithContext(ctx).Model(&galleryImage{}).
		Select("url", "thumb_url", "prompt").
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	ret := make([]Image, 0, len(records))
	for _, r := range records {
		ret = append(ret, Image{URL: r.URL, ThumbURL: r.ThumbURL, Prompt: r.Prompt})
	}
	return ret, nil
}
