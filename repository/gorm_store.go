package repository

import (
	"errors"

	"blogmetrics/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 基于 MySQL 的 Store 实现
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetArticle(slug string) (*models.Article, error) {
	var article models.Article
	err := s.db.Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *GormStore) IncrementViewCount(slug string) (int64, error) {
	// INSERT ... ON DUPLICATE KEY UPDATE view_count = view_count + 1，
	// 自增交给数据库，并发请求不会丢更新
	article := models.Article{Slug: slug, ViewCount: 1}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"view_count": gorm.Expr("view_count + 1"),
		}),
	}).Create(&article).Error
	if err != nil {
		return 0, err
	}

	var after models.Article
	if err := s.db.Where("slug = ?", slug).First(&after).Error; err != nil {
		return 0, err
	}
	return after.ViewCount, nil
}

func (s *GormStore) SumLikes(slug string) (int64, error) {
	var total int64
	err := s.db.Model(&models.UserArticleLike{}).
		Where("slug = ?", slug).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) GetUserLikeCount(slug, userID string) (int, error) {
	var like models.UserArticleLike
	err := s.db.Where("slug = ? AND user_id = ?", slug, userID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return like.Count, nil
}

func (s *GormStore) UpsertUserLike(slug, userID string, count int) error {
	like := models.UserArticleLike{Slug: slug, UserID: userID, Count: count}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": count,
		}),
	}).Create(&like).Error
}
