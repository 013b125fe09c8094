package dummydb

import (
	"sort"

	"github.com/livante/growthlab/core/story"
)

type storyRepository struct {
	db *storyTable
}

var _ story.Repository = (*storyRepository)(nil) // interface compliance check

func NewStoryRepository(db *DB) story.Repository {
	return &storyRepository{db: db.story}
}

func (repo *storyRepository) QueryAllStories() ([]story.Story, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	stories := make([]story.Story, 0, len(repo.db.table))
	for _, st := range repo.db.table {
		stories = append(stories, *st)
	}
	sort.Slice(stories, func(i, j int) bool { return stories[i].CreatedAt.Before(stories[j].CreatedAt) })
	return stories, nil
}

func (repo *storyRepository) GetStoryByID(id string) (story.Story, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if st, ok := repo.db.table[id]; ok {
		return *st, nil
	}
	return story.Story{}, story.ErrNotFound
}

func (repo *storyRepository) CreateStory(st story.Story) (story.Story, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[st.ID] = &st
	return st, nil
}
