package services

import (
	"errors"
	"log"

	"blogmetrics/models"
	"blogmetrics/repository"
)

// ErrCountOutOfRange 点赞数不在 [0, MaxUserLikeCount] 区间
var ErrCountOutOfRange = errors.New("like count out of range")

// LikeStats 单篇文章的点赞统计：全站合计 + 当前访客自己的数量
type LikeStats struct {
	TotalLikeCount int64 `json:"totalLikeCount"`
	UserLikeCount  int   `json:"userLikeCount"`
}

type LikeService struct {
	store  repository.Store
	rank   *RankService
	events *EventPublisher
}

// NewLikeService rank 和 events 允许为 nil，只影响排行榜和事件旁路
func NewLikeService(store repository.Store, rank *RankService, events *EventPublisher) *LikeService {
	return &LikeService{store: store, rank: rank, events: events}
}

// Get 查询点赞统计。合计为 0 时跳过访客行查询，省一次没人点过赞时的库访问。
// 未知 slug 和没人点赞的 slug 都返回全 0，这里刻意不区分
func (s *LikeService) Get(slug, userID string) (LikeStats, error) {
	total, err := s.store.SumLikes(slug)
	if err != nil {
		return LikeStats{}, err
	}

	var userCount int
	if total > 0 {
		userCount, err = s.store.GetUserLikeCount(slug, userID)
		if err != nil {
			return LikeStats{}, err
		}
	}

	return LikeStats{TotalLikeCount: total, UserLikeCount: userCount}, nil
}

// Upsert 把访客对文章的点赞数覆盖写成 count（客户端传新总量，不是增量），
// 然后重算该文章的合计。越界直接拒绝，不碰存储
func (s *LikeService) Upsert(slug, userID string, count int) (LikeStats, error) {
	if count < 0 || count > models.MaxUserLikeCount {
		return LikeStats{}, ErrCountOutOfRange
	}

	if err := s.store.UpsertUserLike(slug, userID, count); err != nil {
		return LikeStats{}, err
	}

	total, err := s.store.SumLikes(slug)
	if err != nil {
		return LikeStats{}, err
	}

	// 排行榜和事件都是旁路，失败只记日志，不影响本次请求
	if s.rank != nil {
		if err := s.rank.RecordLikeTotal(slug, total); err != nil {
			log.Println("update like rank failed:", err)
		}
	}
	s.events.Publish(EventArticleLiked, slug, int64(count))

	return LikeStats{TotalLikeCount: total, UserLikeCount: count}, nil
}
