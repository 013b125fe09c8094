// Package quiz implements the course quiz mini-game: a shuffled question
// run with single-answer selection and a running score.
package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/livante/growthlab/core/catalog"
)

var (
	ErrEmptyBank       = errors.New("quiz has no questions")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
	ErrInvalidOption   = errors.New("answer is not one of the options")
	ErrFinished        = errors.New("quiz already finished")
)

// Phase of the quiz state machine.
type Phase int

const (
	PhasePresenting Phase = iota
	PhaseAnswered
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	default:
		return "presenting"
	}
}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Session is a single quiz run. The question order is shuffled once at
// creation and fixed for the rest of the session; the canonical bank is
// never mutated.
type Session struct {
	mu        sync.Mutex
	questions []catalog.QuizQuestion
	idx       int
	phase     Phase
	selected  string
	score     int
}

func NewSession(bank []catalog.QuizQuestion) (*Session, error) {
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}
	questions := make([]catalog.QuizQuestion, len(bank))
	copy(questions, bank)

	rngMu.Lock()
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	rngMu.Unlock()

	return &Session{questions: questions}, nil
}

// Current returns the question being presented or answered and its 0-based
// index. ok is false once the quiz is finished.
func (s *Session) Current() (q catalog.QuizQuestion, idx int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseFinished {
		return catalog.QuizQuestion{}, s.idx, false
	}
	return s.questions[s.idx], s.idx, true
}

// SubmitAnswer accepts an answer for the current question. Only legal while
// presenting; a repeat submission for the same question is rejected by the
// state shape. The score increments by 1 iff the selected option equals the
// canonical correct answer exactly.
func (s *Session) SubmitAnswer(selected string) (correct bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseFinished:
		return false, ErrFinished
	case PhaseAnswered:
		return false, ErrAlreadyAnswered
	}

	q := s.questions[s.idx]
	var valid bool
	for _, opt := range q.Options {
		if opt == selected {
			valid = true
			break
		}
	}
	if !valid {
		return false, ErrInvalidOption
	}

	s.phase = PhaseAnswered
	s.selected = selected
	if selected == q.CorrectAnswer {
		s.score++
		return true, nil
	}
	return false, nil
}

// Advance moves to the next question, or finishes the quiz after the last
// one. Only legal after the current question has been answered.
func (s *Session) Advance() (finished bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseFinished:
		return true, ErrFinished
	case PhasePresenting:
		return false, ErrNotAnswered
	}

	if s.idx+1 < len(s.questions) {
		s.idx++
		s.phase = PhasePresenting
		s.selected = ""
		return false, nil
	}
	s.phase = PhaseFinished
	return true, nil
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Len() int {
	return len(s.questions)
}

// Selected returns the answer chosen for the current question ("" while
// presenting).
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Questions returns the session's question order.
func (s *Session) Questions() []catalog.QuizQuestion {
	questions := make([]catalog.QuizQuestion, len(s.questions))
	copy(questions, s.questions)
	return questions
}
