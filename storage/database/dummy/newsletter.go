package dummydb

import (
	"github.com/livante/growthlab/core/newsletter"
)

type subscriberRepository struct {
	db *subscriberTable
}

var _ newsletter.Repository = (*subscriberRepository)(nil) // interface compliance check

func NewSubscriberRepository(db *DB) newsletter.Repository {
	return &subscriberRepository{db: db.newsletter}
}

func (repo *subscriberRepository) GetSubscriberByEmail(email string) (newsletter.Subscriber, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sub := range repo.db.table {
		if sub.Email == email {
			return *sub, nil
		}
	}
	return newsletter.Subscriber{}, newsletter.ErrNotFound
}

func (repo *subscriberRepository) CreateSubscriber(sub newsletter.Subscriber) (newsletter.Subscriber, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[sub.ID] = &sub
	return sub, nil
}
