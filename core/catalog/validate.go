package catalog

import (
	"fmt"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"
)

// validate checks catalog invariants once at startup:
// levels strictly increase along the unlock path, unlock thresholds are
// non-decreasing with level, exactly one realm is the entry realm, and every
// quiz question's correct answer is one of its options.
func (c *Catalog) validate() error {
	if len(c.realms) == 0 {
		return errors.New("no realms defined")
	}

	var entryCount int
	for _, realm := range c.realms {
		realm := realm
		if err := vala.BeginValidation().Validate(
			vala.StringNotEmpty(realm.ID, "realm.ID"),
			vala.StringNotEmpty(realm.Name, "realm.Name"),
			vala.GreaterThan(realm.Level, 0, "realm.Level"),
			vala.GreaterThan(len(realm.Courses), 0, "realm.Courses"),
		).Check(); err != nil {
			return errors.Wrapf(err, "realm %q", realm.ID)
		}
		if realm.IsEntry() {
			entryCount++
		}
	}
	if entryCount != 1 {
		return errors.Errorf("want exactly 1 entry realm, got %d", entryCount)
	}

	// realms are sorted by level at this point
	for i := 1; i < len(c.realms); i++ {
		prev, curr := c.realms[i-1], c.realms[i]
		if curr.Level <= prev.Level {
			return errors.Errorf("realm levels must strictly increase: %q (%d) after %q (%d)",
				curr.ID, curr.Level, prev.ID, prev.Level)
		}
		if curr.RequiredCourses < prev.RequiredCourses {
			return errors.Errorf("unlock thresholds must not decrease: %q (%d) after %q (%d)",
				curr.ID, curr.RequiredCourses, prev.ID, prev.RequiredCourses)
		}
	}
	if !c.realms[0].IsEntry() {
		return errors.New("the entry realm must have the lowest level")
	}

	// course IDs must be unique across realms
	var want int
	for _, realm := range c.realms {
		want += len(realm.Courses)
	}
	if len(c.coursesByID) != want {
		return errors.New("duplicate course IDs across realms")
	}

	for courseID, bank := range builtinQuizBanks {
		if _, ok := c.coursesByID[courseID]; !ok {
			return errors.Errorf("quiz bank references unknown course %d", courseID)
		}
		if err := validateQuizBank(bank); err != nil {
			return errors.Wrapf(err, "quiz bank for course %d", courseID)
		}
	}
	return validateQuizBank(defaultQuizBank)
}

func validateQuizBank(bank []QuizQuestion) error {
	for _, q := range bank {
		if err := vala.BeginValidation().Validate(
			vala.StringNotEmpty(q.Question, fmt.Sprintf("question %d", q.ID)),
			vala.StringNotEmpty(q.CorrectAnswer, fmt.Sprintf("question %d answer", q.ID)),
			vala.GreaterThan(len(q.Options), 1, fmt.Sprintf("question %d options", q.ID)),
		).Check(); err != nil {
			return err
		}
		var found bool
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return errors.Errorf("question %d: correct answer is not among the options", q.ID)
		}
	}
	return nil
}
