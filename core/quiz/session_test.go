package quiz

import (
	"testing"

	"github.com/livante/growthlab/core/catalog"
)

func testBank() []catalog.QuizQuestion {
	return []catalog.QuizQuestion{
		{ID: 1, Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswer: "b", Explanation: "E1"},
		{ID: 2, Question: "Q2", Options: []string{"x", "y"}, CorrectAnswer: "x", Explanation: "E2"},
		{ID: 3, Question: "Q3", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: "4", Explanation: "E3"},
	}
}

func TestNewSession_shuffleIsPermutation(t *testing.T) {
	bank := testBank()

	for run := 0; run < 20; run++ {
		session, err := NewSession(bank)
		if err != nil {
			t.Fatalf("NewSession() failed: %v", err)
		}
		if got := session.Len(); got != len(bank) {
			t.Fatalf("Len() = %d; want %d", got, len(bank))
		}

		seen := make(map[int]bool, len(bank))
		for _, q := range session.Questions() {
			seen[q.ID] = true
		}
		for _, q := range bank {
			if !seen[q.ID] {
				t.Fatalf("question %d missing after shuffle", q.ID)
			}
		}
	}

	// the canonical bank is never mutated
	want := testBank()
	for i, q := range bank {
		if q.ID != want[i].ID || q.Question != want[i].Question {
			t.Fatal("shuffle mutated the canonical bank")
		}
	}
}

func TestNewSession_emptyBank(t *testing.T) {
	if _, err := NewSession(nil); err != ErrEmptyBank {
		t.Errorf("NewSession(nil) error = %v; want ErrEmptyBank", err)
	}
}

func TestSession_scoring(t *testing.T) {
	session, err := NewSession(testBank())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	for session.Phase() != PhaseFinished {
		q, _, ok := session.Current()
		if !ok {
			break
		}
		correct, err := session.SubmitAnswer(q.CorrectAnswer)
		if err != nil {
			t.Fatalf("SubmitAnswer() failed: %v", err)
		}
		if !correct {
			t.Errorf("submitting the correct answer for %d reported wrong", q.ID)
		}
		if _, err := session.Advance(); err != nil {
			t.Fatalf("Advance() failed: %v", err)
		}
	}

	if got := session.Score(); got != session.Len() {
		t.Errorf("Score() = %d; want %d", got, session.Len())
	}
	if got := session.Phase(); got != PhaseFinished {
		t.Errorf("Phase() = %v; want finished", got)
	}
}

func TestSession_wrongAnswerLeavesScoreUnchanged(t *testing.T) {
	session, err := NewSession(testBank())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	q, _, _ := session.Current()
	var wrong string
	for _, opt := range q.Options {
		if opt != q.CorrectAnswer {
			wrong = opt
			break
		}
	}

	correct, err := session.SubmitAnswer(wrong)
	if err != nil {
		t.Fatalf("SubmitAnswer() failed: %v", err)
	}
	if correct {
		t.Error("wrong answer reported correct")
	}
	if got := session.Score(); got != 0 {
		t.Errorf("Score() = %d; want 0", got)
	}
}

func TestSession_stateMachine(t *testing.T) {
	session, err := NewSession(testBank())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	// advance before answering
	if _, err := session.Advance(); err != ErrNotAnswered {
		t.Errorf("Advance() before answer error = %v; want ErrNotAnswered", err)
	}

	// invalid option leaves state unchanged
	if _, err := session.SubmitAnswer("definitely-not-an-option"); err != ErrInvalidOption {
		t.Errorf("SubmitAnswer(invalid) error = %v; want ErrInvalidOption", err)
	}
	if got := session.Phase(); got != PhasePresenting {
		t.Errorf("Phase() after invalid answer = %v; want presenting", got)
	}

	// double submission rejected, score unchanged
	q, _, _ := session.Current()
	if _, err := session.SubmitAnswer(q.CorrectAnswer); err != nil {
		t.Fatalf("SubmitAnswer() failed: %v", err)
	}
	scoreAfterFirst := session.Score()
	if _, err := session.SubmitAnswer(q.CorrectAnswer); err != ErrAlreadyAnswered {
		t.Errorf("second SubmitAnswer() error = %v; want ErrAlreadyAnswered", err)
	}
	if got := session.Score(); got != scoreAfterFirst {
		t.Errorf("Score() changed on rejected submission: %d -> %d", scoreAfterFirst, got)
	}

	// run to the end, then everything errors with ErrFinished
	for {
		finished, err := session.Advance()
		if err != nil {
			t.Fatalf("Advance() failed: %v", err)
		}
		if finished {
			break
		}
		q, _, _ := session.Current()
		if _, err := session.SubmitAnswer(q.Options[0]); err != nil {
			t.Fatalf("SubmitAnswer() failed: %v", err)
		}
	}
	if _, err := session.SubmitAnswer("x"); err != ErrFinished {
		t.Errorf("SubmitAnswer() after finish error = %v; want ErrFinished", err)
	}
	if _, err := session.Advance(); err != ErrFinished {
		t.Errorf("Advance() after finish error = %v; want ErrFinished", err)
	}
	if _, _, ok := session.Current(); ok {
		t.Error("Current() ok after finish; want false")
	}
}
