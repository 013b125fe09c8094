package progress

import (
	"sync"

	"github.com/livante/growthlab/core/catalog"
)

// Tracker holds a browsing session's completed courses. It is volatile and
// session-scoped: no identity beyond the session, never persisted, gone on
// reload. Each session owns exactly one Tracker.
type Tracker struct {
	mu        sync.Mutex
	cat       *catalog.Catalog
	completed map[int]struct{} // course IDs
	perRealm  map[string]int
}

func NewTracker(cat *catalog.Catalog) *Tracker {
	return &Tracker{
		cat:       cat,
		completed: make(map[int]struct{}),
		perRealm:  make(map[string]int),
	}
}

// CompleteCourse records a course completion. Completing the same course
// twice is a no-op; unknown courses are an error.
func (t *Tracker) CompleteCourse(courseID int) (newlyCompleted bool, err error) {
	realmID, err := t.cat.RealmOfCourse(courseID)
	if err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, done := t.completed[courseID]; done {
		return false, nil
	}
	t.completed[courseID] = struct{}{}
	t.perRealm[realmID]++
	return true, nil
}

func (t *Tracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.completed)
}

func (t *Tracker) CompletedInRealm(realmID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.perRealm[realmID]
}

func (t *Tracker) IsCompleted(courseID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, done := t.completed[courseID]
	return done
}
