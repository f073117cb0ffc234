package services

import (
	"github.com/go-redis/redis"
)

const (
	likeRankKey = "rank:article:likes"
	viewRankKey = "rank:article:views"
)

// RankEntry 排行榜里的一条
type RankEntry struct {
	Slug  string `json:"slug"`
	Score int64  `json:"score"`
	Rank  int    `json:"rank"`
}

// RankService 用 Redis ZSET 维护最受欢迎文章排行。只做展示用途，
// 计数的事实来源始终是数据库，Redis 丢了重算即可
type RankService struct {
	rdb *redis.Client
}

func NewRankService(rdb *redis.Client) *RankService {
	return &RankService{rdb: rdb}
}

// RecordLikeTotal 点赞是覆盖写，直接把重算后的合计 ZADD 进去
func (r *RankService) RecordLikeTotal(slug string, total int64) error {
	return r.rdb.ZAdd(likeRankKey, redis.Z{Score: float64(total), Member: slug}).Err()
}

// RecordView 浏览只增不减，ZINCRBY 即可
func (r *RankService) RecordView(slug string) error {
	return r.rdb.ZIncrBy(viewRankKey, 1, slug).Err()
}

// Top 返回前 n 名，by 取 "likes" 或 "views"
func (r *RankService) Top(by string, n int) ([]RankEntry, error) {
	key := likeRankKey
	if by == "views" {
		key = viewRankKey
	}

	zres, err := r.rdb.ZRevRangeWithScores(key, 0, int64(n-1)).Result()
	if err == redis.Nil {
		return []RankEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]RankEntry, 0, len(zres))
	for idx, z := range zres {
		slug, _ := z.Member.(string)
		entries = append(entries, RankEntry{
			Slug:  slug,
			Score: int64(z.Score),
			Rank:  idx + 1,
		})
	}
	return entries, nil
}
