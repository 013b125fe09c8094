package echoapi

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/progress"
	"github.com/livante/growthlab/core/quiz"
)

// sessionHeader carries the browsing session ID. The server mints one on
// the first request and echoes it back; clients replay it to keep their
// course progress, quiz state and unlock animations across requests.
const sessionHeader = "X-Session-ID"

type (
	// browseSession owns the per-visitor learning state.
	browseSession struct {
		mu sync.Mutex

		id        string
		tracker   *progress.Tracker
		evaluator *progress.Evaluator
		sequencer *progress.Sequencer
		themes    *catalog.ThemeResolver
		quizzes   map[int]*quiz.Session // keyed by course ID
		lastSeen  time.Time

		// most recently revealed realm, cleared once reported
		revealedRealm string
	}

	sessionStore struct {
		mu       sync.Mutex
		cat      *catalog.Catalog
		sessions map[string]*browseSession
		ttl      time.Duration
		stopped  bool
	}
)

func newSessionStore(cat *catalog.Catalog, ttl time.Duration) *sessionStore {
	return &sessionStore{
		cat:      cat,
		sessions: make(map[string]*browseSession),
		ttl:      ttl,
	}
}

func (st *sessionStore) newSession() *browseSession {
	s := &browseSession{
		id:        uuid.New().String(),
		tracker:   progress.NewTracker(st.cat),
		evaluator: progress.NewEvaluator(st.cat),
		themes:    catalog.NewThemeResolver(st.cat),
		quizzes:   make(map[int]*quiz.Session),
		lastSeen:  time.Now(),
	}
	s.sequencer = progress.NewSequencer(core.Conf.UnlockRevealDelay, func(realmID string) {
		s.mu.Lock()
		s.revealedRealm = realmID
		s.mu.Unlock()
	})
	return s
}

// get returns the browsing session named by the request header, minting a
// fresh one when the header is absent or stale. The session ID is always
// echoed back on the response.
func (st *sessionStore) get(ctx echo.Context) *browseSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictStale()

	id := ctx.Request().Header.Get(sessionHeader)
	s, ok := st.sessions[id]
	if !ok {
		s = st.newSession()
		st.sessions[s.id] = s
	}
	s.lastSeen = time.Now()

	ctx.Response().Header().Set(sessionHeader, s.id)
	return s
}

// evictStale drops sessions idle past the TTL. Callers must hold st.mu.
func (st *sessionStore) evictStale() {
	deadline := time.Now().Add(-st.ttl)
	for id, s := range st.sessions {
		if s.lastSeen.Before(deadline) {
			s.sequencer.Stop()
			delete(st.sessions, id)
		}
	}
}

func (st *sessionStore) stopAll() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.stopped {
		return
	}
	st.stopped = true
	for id, s := range st.sessions {
		s.sequencer.Stop()
		delete(st.sessions, id)
	}
}

// takeRevealedRealm reports the realm revealed by the unlock sequence
// since the last call, if any.
func (s *browseSession) takeRevealedRealm() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.revealedRealm == "" {
		return "", false
	}
	realm := s.revealedRealm
	s.revealedRealm = ""
	return realm, true
}
