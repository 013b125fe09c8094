package dummydb

import (
	"sync"

	"github.com/livante/growthlab/core/newsletter"
	"github.com/livante/growthlab/core/story"
	"github.com/livante/growthlab/core/user"
)

// DB is a volatile in-memory store used in DEV and in tests.
type (
	DB struct {
		user       *userTable
		newsletter *subscriberTable
		story      *storyTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	subscriberTable struct {
		sync.RWMutex
		table map[string]*newsletter.Subscriber
	}

	storyTable struct {
		sync.RWMutex
		table map[string]*story.Story
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		newsletter: &subscriberTable{table: make(map[string]*newsletter.Subscriber)},
		story:      &storyTable{table: make(map[string]*story.Story)},
	}
	return db, nil
}
