package catalog

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrRealmNotFound  = errors.New("realm not found")
	ErrCourseNotFound = errors.New("course not found")
)

// Catalog is the validated, immutable realm/course configuration.
// It is built once at startup; malformed data fails fast there instead of
// producing inconsistent visibility at render time.
type Catalog struct {
	realms       []Realm // ordered by level
	realmsByID   map[string]Realm
	coursesByID  map[int]Course
	realmOfCourse map[int]string
	totalCourses int
}

func New() (*Catalog, error) {
	return build(builtinRealms)
}

func build(realms []Realm) (*Catalog, error) {
	c := &Catalog{
		realms:        make([]Realm, len(realms)),
		realmsByID:    make(map[string]Realm, len(realms)),
		coursesByID:   make(map[int]Course),
		realmOfCourse: make(map[int]string),
	}
	copy(c.realms, realms)
	sort.Slice(c.realms, func(i, j int) bool { return c.realms[i].Level < c.realms[j].Level })

	for _, realm := range c.realms {
		c.realmsByID[realm.ID] = realm
		for _, course := range realm.Courses {
			c.coursesByID[course.ID] = course
			c.realmOfCourse[course.ID] = realm.ID
			c.totalCourses++
		}
	}

	if err := c.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}
	return c, nil
}

// Realms returns all realms ordered by level.
func (c *Catalog) Realms() []Realm {
	realms := make([]Realm, len(c.realms))
	copy(realms, c.realms)
	return realms
}

func (c *Catalog) Realm(id string) (Realm, error) {
	if realm, ok := c.realmsByID[id]; ok {
		return realm, nil
	}
	return Realm{}, ErrRealmNotFound
}

func (c *Catalog) Course(id int) (Course, error) {
	if course, ok := c.coursesByID[id]; ok {
		return course, nil
	}
	return Course{}, ErrCourseNotFound
}

// RealmOfCourse returns the ID of the realm a course belongs to.
func (c *Catalog) RealmOfCourse(courseID int) (string, error) {
	if id, ok := c.realmOfCourse[courseID]; ok {
		return id, nil
	}
	return "", ErrCourseNotFound
}

// EntryRealm returns the single realm without an unlock requirement.
func (c *Catalog) EntryRealm() Realm {
	return c.realms[0]
}

// NextRealm returns the realm immediately following the given one in the
// level ordering, or false for the last realm.
func (c *Catalog) NextRealm(id string) (Realm, bool) {
	for i, realm := range c.realms {
		if realm.ID == id {
			if i+1 < len(c.realms) {
				return c.realms[i+1], true
			}
			return Realm{}, false
		}
	}
	return Realm{}, false
}

func (c *Catalog) TotalCourses() int { return c.totalCourses }

func (c *Catalog) TotalRealms() int { return len(c.realms) }

// QuizBank returns a course's quiz questions. Courses without a dedicated
// bank share the default bank, mirroring the original sample behavior.
func (c *Catalog) QuizBank(courseID int) []QuizQuestion {
	if bank, ok := builtinQuizBanks[courseID]; ok {
		return bank
	}
	return defaultQuizBank
}

func (c *Catalog) Achievements() []string { return builtinAchievements }

func (c *Catalog) Videos() []Video { return builtinVideos }

func (c *Catalog) Video(id int) (Video, bool) {
	for _, v := range builtinVideos {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}

func (c *Catalog) Plans() []Plan { return builtinPlans }

// Theme returns the visual theme for a realm, falling back to the entry
// realm's theme for unknown IDs.
func (c *Catalog) Theme(realmID string) Theme {
	if theme, ok := builtinThemes[realmID]; ok {
		return theme
	}
	return builtinThemes[c.EntryRealm().ID]
}

// MysteryHint returns the teaser copy for a yet-unrevealed realm.
func (c *Catalog) MysteryHint(realmID string) string {
	if realm, ok := c.realmsByID[realmID]; ok && realm.MysteryHint != "" {
		return realm.MysteryHint
	}
	return "Unknown realm ahead..."
}
