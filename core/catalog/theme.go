package catalog

import (
	"sync"
	"time"
)

// transitionWindow covers the original smooth-transition chain (200ms fade
// plus 500ms settle).
const transitionWindow = 700 * time.Millisecond

var nowFunc = time.Now // mockable

// ThemeResolver maps the active realm to its visual theme and exposes a
// transition flag while the active theme is changing.
type ThemeResolver struct {
	mu              sync.Mutex
	cat             *Catalog
	current         Theme
	transitionUntil time.Time
}

func NewThemeResolver(cat *Catalog) *ThemeResolver {
	return &ThemeResolver{
		cat:     cat,
		current: cat.Theme(cat.EntryRealm().ID),
	}
}

// Resolve returns the theme for the given realm, marking a transition window
// when the realm differs from the previously resolved one.
func (tr *ThemeResolver) Resolve(realmID string) Theme {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	theme := tr.cat.Theme(realmID)
	if theme.ID != tr.current.ID {
		tr.current = theme
		tr.transitionUntil = nowFunc().Add(transitionWindow)
	}
	return tr.current
}

func (tr *ThemeResolver) IsTransitioning() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return nowFunc().Before(tr.transitionUntil)
}
