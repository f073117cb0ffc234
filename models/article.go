package models

import "gorm.io/gorm"

// Article 文章浏览计数，按 slug 唯一。首次浏览/点赞时隐式创建
type Article struct {
	gorm.Model
	Slug      string `gorm:"size:191;uniqueIndex"`
	ViewCount int64  `gorm:"not null;default:0"`
}

func (Article) TableName() string {
	return "articles"
}
