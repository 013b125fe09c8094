package progress

import (
	"sync"
	"time"
)

// Sequencer states. An unlock plays in two phases: a "realm mastered" banner
// (Announcing) followed, after RevealDelay, by the next realm's identity
// (Revealing).
type State int

const (
	StateIdle State = iota
	StateAnnouncing
	StateRevealing
)

func (s State) String() string {
	switch s {
	case StateAnnouncing:
		return "announcing"
	case StateRevealing:
		return "revealing"
	default:
		return "idle"
	}
}

// DefaultRevealDelay matches the original two-second reveal.
const DefaultRevealDelay = 2 * time.Second

// Sequencer drives the one-shot unlock-transition sequence. It owns the
// pending reveal timer; Stop cancels it so a torn-down or superseded session
// never fires against stale data.
type Sequencer struct {
	mu       sync.Mutex
	delay    time.Duration
	onUnlock func(realmID string)

	state    State
	target   string // the next realm currently announced or revealed
	revealed map[string]bool
	hint     bool
	timer    *time.Timer
	stopped  bool
}

// NewSequencer creates an idle sequencer. onUnlock is invoked exactly once
// per revealed realm, without the sequencer lock held.
func NewSequencer(delay time.Duration, onUnlock func(realmID string)) *Sequencer {
	if delay <= 0 {
		delay = DefaultRevealDelay
	}
	return &Sequencer{
		delay:    delay,
		onUnlock: onUnlock,
		revealed: make(map[string]bool),
	}
}

// Evaluate feeds the sequencer the latest progress reading: the overall
// completion percent and the next realm (nextOK false when the learner is in
// the final realm). Re-evaluating with an unchanged reading never re-fires.
func (s *Sequencer) Evaluate(percent float64, nextRealmID string, nextOK bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	// ambient hint: purely a display condition, no state transition
	s.hint = percent > 75 && percent < 100 && s.state == StateIdle

	if !nextOK {
		// no next realm: cancel any pending reveal aimed at a stale target
		s.cancelTimerLocked()
		if s.state == StateAnnouncing {
			s.state = StateIdle
			s.target = ""
		}
		return
	}

	if percent < 100 || s.revealed[nextRealmID] {
		return
	}

	switch s.state {
	case StateIdle:
		s.announceLocked(nextRealmID)
	case StateAnnouncing:
		if s.target != nextRealmID { // superseded before the reveal fired
			s.cancelTimerLocked()
			s.announceLocked(nextRealmID)
		}
	case StateRevealing:
		// a new unlock sequence begins only for a different target
		if s.target != nextRealmID {
			s.announceLocked(nextRealmID)
		}
	}
}

func (s *Sequencer) announceLocked(nextRealmID string) {
	s.state = StateAnnouncing
	s.target = nextRealmID
	s.timer = time.AfterFunc(s.delay, func() { s.reveal(nextRealmID) })
}

func (s *Sequencer) reveal(realmID string) {
	s.mu.Lock()
	if s.stopped || s.state != StateAnnouncing || s.target != realmID || s.revealed[realmID] {
		s.mu.Unlock()
		return
	}
	s.state = StateRevealing
	s.revealed[realmID] = true
	onUnlock := s.onUnlock
	s.mu.Unlock()

	if onUnlock != nil {
		onUnlock(realmID)
	}
}

func (s *Sequencer) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Stop cancels any pending reveal. Called on session teardown; a stopped
// sequencer ignores further evaluations.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cancelTimerLocked()
}

func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Target returns the realm currently being announced or revealed.
func (s *Sequencer) Target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// HintVisible reports the ambient "something stirs ahead" affordance:
// shown while progress sits strictly between 75 and 100 percent and no
// unlock sequence is playing.
func (s *Sequencer) HintVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hint
}

// Revealed reports whether the given realm's reveal has already played.
func (s *Sequencer) Revealed(realmID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[realmID]
}
