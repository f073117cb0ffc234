package repository

import (
	"sync"

	"blogmetrics/models"
)

// MemoryStore 内存版 Store，测试和本地无库运行用
type MemoryStore struct {
	mu    sync.Mutex
	views map[string]int64
	likes map[string]map[string]int // slug -> userID -> count
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		views: make(map[string]int64),
		likes: make(map[string]map[string]int),
	}
}

func (s *MemoryStore) GetArticle(slug string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.views[slug]
	if !ok {
		return nil, ErrArticleNotFound
	}
	return &models.Article{Slug: slug, ViewCount: count}, nil
}

func (s *MemoryStore) IncrementViewCount(slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[slug]++
	return s.views[slug], nil
}

func (s *MemoryStore) SumLikes(slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, count := range s.likes[slug] {
		total += int64(count)
	}
	return total, nil
}

func (s *MemoryStore) GetUserLikeCount(slug, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.likes[slug][userID], nil
}

func (s *MemoryStore) UpsertUserLike(slug, userID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.likes[slug] == nil {
		s.likes[slug] = make(map[string]int)
	}
	s.likes[slug][userID] = count
	return nil
}
