package repository

import (
	"errors"

	"blogmetrics/models"
)

// ErrArticleNotFound 按 slug 查不到文章
var ErrArticleNotFound = errors.New("article not found")

// Store 计数服务依赖的最小存储接口，便于用内存实现替换数据库做测试
type Store interface {
	// GetArticle 按 slug 查询文章，不存在返回 ErrArticleNotFound
	GetArticle(slug string) (*models.Article, error)

	// IncrementViewCount 原子自增浏览数并返回自增后的值；文章不存在时按 viewCount=1 创建。
	// 自增必须发生在存储层，不能在应用层读改写
	IncrementViewCount(slug string) (int64, error)

	// SumLikes 汇总某篇文章所有访客的点赞数，没有记录时为 0
	SumLikes(slug string) (int64, error)

	// GetUserLikeCount 查询单个访客对某篇文章的点赞数，没有记录时为 0
	GetUserLikeCount(slug, userID string) (int, error)

	// UpsertUserLike 覆盖写入 (slug, userID) 的点赞数，行不存在则创建
	UpsertUserLike(slug, userID string, count int) error
}
