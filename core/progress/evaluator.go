// Package progress derives realm progression from a session's completed
// courses: which realm the learner occupies, what is unlocked and visible,
// and the timed unlock-reveal sequence.
package progress

import (
	"github.com/livante/growthlab/core/catalog"
)

// Evaluator computes realm progression from completed-course counts.
// All methods are pure; safe for concurrent use.
type Evaluator struct {
	cat *catalog.Catalog
}

func NewEvaluator(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{cat: cat}
}

// CurrentRealm returns the realm a learner with the given total completed
// count occupies. Thresholds are checked in descending level order; first
// match wins, and the entry realm matches any count.
func (ev *Evaluator) CurrentRealm(completed int) catalog.Realm {
	realms := ev.cat.Realms()
	for i := len(realms) - 1; i > 0; i-- {
		if completed >= realms[i].RequiredCourses {
			return realms[i]
		}
	}
	return realms[0]
}

// NextRealm returns the realm following the given one in the level ordering.
func (ev *Evaluator) NextRealm(realmID string) (catalog.Realm, bool) {
	return ev.cat.NextRealm(realmID)
}

// Unlocked reports whether a realm is unlocked for the given total completed
// count. The entry realm is always unlocked.
func (ev *Evaluator) Unlocked(realm catalog.Realm, totalCompleted int) bool {
	return realm.IsEntry() || totalCompleted >= realm.RequiredCourses
}

// Visible reports whether a realm may be shown: only the current tier and
// one tier ahead, to preserve the mystery reveal. This is presentation
// logic, not a security boundary.
func (ev *Evaluator) Visible(realm catalog.Realm, currentLevel int) bool {
	return realm.Level <= currentLevel+1
}

// OverallPercent is the completion percentage across the whole catalog,
// guarding against an empty catalog.
func OverallPercent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(completed) / float64(total)
}

// RealmView is a realm enriched with session-derived state for rendering.
type RealmView struct {
	catalog.Realm
	CompletedCourses int  `json:"completed_courses"`
	IsUnlocked       bool `json:"is_unlocked"`
	IsVisible        bool `json:"is_visible"`
}

// RealmViews derives per-realm unlock/visibility state for a session.
func (ev *Evaluator) RealmViews(tr *Tracker) []RealmView {
	total := tr.CompletedCount()
	currentLevel := ev.CurrentRealm(total).Level

	realms := ev.cat.Realms()
	views := make([]RealmView, 0, len(realms))
	for _, realm := range realms {
		views = append(views, RealmView{
			Realm:            realm,
			CompletedCourses: tr.CompletedInRealm(realm.ID),
			IsUnlocked:       ev.Unlocked(realm, total),
			IsVisible:        ev.Visible(realm, currentLevel),
		})
	}
	return views
}
