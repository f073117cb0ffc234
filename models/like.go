package models

import "gorm.io/gorm"

// MaxUserLikeCount 单个访客对单篇文章的点赞上限（边界校验用，不靠数据库约束）
const MaxUserLikeCount = 3

// UserArticleLike 记录某个访客对某篇文章的点赞数，(slug, user_id) 唯一。
// UserID 是客户端地址加盐哈希后的派生标识，不存原始地址
type UserArticleLike struct {
	gorm.Model
	Slug   string `gorm:"size:191;uniqueIndex:idx_slug_user"`
	UserID string `gorm:"size:191;uniqueIndex:idx_slug_user"`
	Count  int    `gorm:"not null;default:0"`
}

func (UserArticleLike) TableName() string {
	return "user_article_likes"
}
