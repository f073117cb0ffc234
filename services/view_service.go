package services

import (
	"log"

	"blogmetrics/repository"
)

type ViewService struct {
	store  repository.Store
	rank   *RankService
	events *EventPublisher
}

func NewViewService(store repository.Store, rank *RankService, events *EventPublisher) *ViewService {
	return &ViewService{store: store, rank: rank, events: events}
}

// Get 查询文章浏览数，未知 slug 返回 repository.ErrArticleNotFound
func (s *ViewService) Get(slug string) (int64, error) {
	article, err := s.store.GetArticle(slug)
	if err != nil {
		return 0, err
	}
	return article.ViewCount, nil
}

// Increment 浏览数 +1 并返回新值，首次浏览的 slug 以 1 起建
func (s *ViewService) Increment(slug string) (int64, error) {
	count, err := s.store.IncrementViewCount(slug)
	if err != nil {
		return 0, err
	}

	if s.rank != nil {
		if err := s.rank.RecordView(slug); err != nil {
			log.Println("update view rank failed:", err)
		}
	}
	s.events.Publish(EventArticleViewed, slug, count)

	return count, nil
}
