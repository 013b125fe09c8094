package story

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core"
)

var (
	ErrNotFound = errors.New("story not found")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		QueryAllStories() ([]Story, error)
		GetStoryByID(id string) (Story, error)
		CreateStory(st Story) (Story, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Story, error) {
	if svc.repo == nil {
		return nil, core.ErrNotConfigured
	}
	return svc.repo.QueryAllStories()
}

func (svc *Service) GetByID(id string) (Story, error) {
	if svc.repo == nil {
		return Story{}, core.ErrNotConfigured
	}
	return svc.repo.GetStoryByID(id)
}

func (svc *Service) Create(ns NewStory) (Story, error) {
	if svc.repo == nil {
		return Story{}, core.ErrNotConfigured
	}
	return svc.repo.CreateStory(Story{
		ID:        uuid.New().String(),
		Name:      ns.Name,
		Story:     ns.Story,
		Skill:     ns.Skill,
		Outcome:   ns.Outcome,
		CreatedAt: nowFunc().UTC(),
	})
}
