package catalog

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := cat.TotalRealms(); got != 4 {
		t.Errorf("TotalRealms() = %d; want 4", got)
	}
	if got := cat.TotalCourses(); got != 12 {
		t.Errorf("TotalCourses() = %d; want 12", got)
	}
	if got := cat.EntryRealm().ID; got != "foundation" {
		t.Errorf("EntryRealm() = %q; want foundation", got)
	}

	// levels strictly increase
	realms := cat.Realms()
	for i := 1; i < len(realms); i++ {
		if realms[i].Level <= realms[i-1].Level {
			t.Errorf("realm %q level %d not greater than %q level %d",
				realms[i].ID, realms[i].Level, realms[i-1].ID, realms[i-1].Level)
		}
	}
}

func TestBuild_invalidData(t *testing.T) {
	course := func(id int) Course { return Course{ID: id, Title: "T"} }
	tests := []struct {
		name   string
		realms []Realm
	}{
		{name: "no realms"},
		{
			name: "no entry realm",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, RequiredCourses: 1, Courses: []Course{course(1)}},
			},
		},
		{
			name: "two entry realms",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, Courses: []Course{course(1)}},
				{ID: "b", Name: "B", Level: 2, Courses: []Course{course(2)}},
			},
		},
		{
			name: "duplicate levels",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, Courses: []Course{course(1)}},
				{ID: "b", Name: "B", Level: 1, RequiredCourses: 2, Courses: []Course{course(2)}},
			},
		},
		{
			name: "decreasing thresholds",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, Courses: []Course{course(1)}},
				{ID: "b", Name: "B", Level: 2, RequiredCourses: 5, Courses: []Course{course(2)}},
				{ID: "c", Name: "C", Level: 3, RequiredCourses: 2, Courses: []Course{course(3)}},
			},
		},
		{
			name: "realm without courses",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, Courses: []Course{course(1)}},
				{ID: "b", Name: "B", Level: 2, RequiredCourses: 2},
			},
		},
		{
			name: "duplicate course IDs",
			realms: []Realm{
				{ID: "a", Name: "A", Level: 1, Courses: []Course{course(1)}},
				{ID: "b", Name: "B", Level: 2, RequiredCourses: 2, Courses: []Course{course(1)}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := build(tt.realms); err == nil {
				t.Error("build() succeeded; want error")
			}
		})
	}
}

func TestCatalog_NextRealm(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{id: "foundation", want: "life-mastery", wantOK: true},
		{id: "life-mastery", want: "elite-skills", wantOK: true},
		{id: "elite-skills", want: "mastery", wantOK: true},
		{id: "mastery"},
		{id: "atlantis"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			next, ok := cat.NextRealm(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("NextRealm(%q) ok = %v; want %v", tt.id, ok, tt.wantOK)
			}
			if ok && next.ID != tt.want {
				t.Errorf("NextRealm(%q) = %q; want %q", tt.id, next.ID, tt.want)
			}
		})
	}
}

func TestCatalog_QuizBank(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, courseID := range []int{1, 7} { // dedicated bank & fallback
		bank := cat.QuizBank(courseID)
		if len(bank) == 0 {
			t.Fatalf("QuizBank(%d) is empty", courseID)
		}
		for _, q := range bank {
			var found bool
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
				}
			}
			if !found {
				t.Errorf("question %d: correct answer not among options", q.ID)
			}
		}
	}
}

func TestThemeResolver(t *testing.T) {
	cat, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	now := time.Now()
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	tr := NewThemeResolver(cat)
	if tr.IsTransitioning() {
		t.Error("new resolver should not be transitioning")
	}
	if got := tr.Resolve("foundation"); got.ID != "foundation" {
		t.Errorf("Resolve(foundation) = %q", got.ID)
	}
	if tr.IsTransitioning() {
		t.Error("resolving the same realm should not start a transition")
	}

	if got := tr.Resolve("life-mastery"); got.ID != "life-mastery" {
		t.Errorf("Resolve(life-mastery) = %q", got.ID)
	}
	if !tr.IsTransitioning() {
		t.Error("realm change should start a transition")
	}

	now = now.Add(transitionWindow + time.Millisecond)
	if tr.IsTransitioning() {
		t.Error("transition should have settled")
	}

	// unknown realm falls back to the entry theme
	if got := tr.Resolve("atlantis"); got.ID != "foundation" {
		t.Errorf("Resolve(atlantis) = %q; want foundation", got.ID)
	}
}
