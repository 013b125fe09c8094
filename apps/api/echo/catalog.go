package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/user"
)

type catalogApi struct {
	sessions *sessionStore
	cat      *catalog.Catalog
	userSvc  *user.Service
}

func registerCatalogAPI(g *echo.Group, optAuth echo.MiddlewareFunc, sessions *sessionStore, cat *catalog.Catalog, userSvc *user.Service) {
	api := catalogApi{sessions: sessions, cat: cat, userSvc: userSvc}

	rg := g.Group("/realms", optAuth)
	rg.GET("", api.queryRealms)
	rg.GET("/current", api.currentRealm)
	rg.GET("/:id", api.retrieveRealm)
	rg.GET("/:id/theme", api.realmTheme)

	cg := g.Group("/courses", optAuth)
	cg.GET("/:id", api.retrieveCourse)
	cg.POST("/:id/open", api.openCourse)
	cg.GET("/:id/modules/:index/access", api.moduleAccess)

	vg := g.Group("/videos", optAuth)
	vg.GET("", api.queryVideos)
	vg.GET("/:id/access", api.videoAccess)

	g.GET("/plans", api.queryPlans)
	g.GET("/achievements", api.queryAchievements)
}

type realmItem struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Level            int              `json:"level"`
	RequiredCourses  int              `json:"required_courses"`
	CompletedCourses int              `json:"completed_courses"`
	IsUnlocked       bool             `json:"is_unlocked"`
	MysteryHint      string           `json:"mystery_hint,omitempty"`
	Courses          []catalog.Course `json:"courses,omitempty"`
	Theme            catalog.Theme    `json:"theme"`
}

// queryRealms lists the realms a session may see. Realms more than one
// tier above the visitor's current realm stay hidden; locked but visible
// realms are teased with their mystery hint and no course list.
func (api *catalogApi) queryRealms(ctx echo.Context) error {
	s := api.sessions.get(ctx)

	items := make([]realmItem, 0, api.cat.TotalRealms())
	for _, view := range s.evaluator.RealmViews(s.tracker) {
		if !view.IsVisible {
			continue
		}
		item := realmItem{
			ID:               view.ID,
			Name:             view.Name,
			Level:            view.Level,
			RequiredCourses:  view.RequiredCourses,
			CompletedCourses: view.CompletedCourses,
			IsUnlocked:       view.IsUnlocked,
			Theme:            api.cat.Theme(view.ID),
		}
		if view.IsUnlocked {
			item.Description = view.Description
			item.Courses = view.Courses
		} else {
			item.MysteryHint = api.cat.MysteryHint(view.ID)
		}
		items = append(items, item)
	}
	return ctx.JSON(http.StatusOK, items)
}

// retrieveRealm serves a realm detail. Hidden realms 404 so their very
// existence is not leaked to sessions that have not earned a glimpse.
func (api *catalogApi) retrieveRealm(ctx echo.Context) error {
	s := api.sessions.get(ctx)

	realm, err := api.cat.Realm(ctx.Param("id"))
	if err != nil {
		return err
	}
	total := s.tracker.CompletedCount()
	currentLevel := s.evaluator.CurrentRealm(total).Level
	if !s.evaluator.Visible(realm, currentLevel) {
		return errHttpNotFound
	}

	item := realmItem{
		ID:               realm.ID,
		Name:             realm.Name,
		Level:            realm.Level,
		RequiredCourses:  realm.RequiredCourses,
		CompletedCourses: s.tracker.CompletedInRealm(realm.ID),
		IsUnlocked:       s.evaluator.Unlocked(realm, total),
		Theme:            api.cat.Theme(realm.ID),
	}
	if item.IsUnlocked {
		item.Description = realm.Description
		item.Courses = realm.Courses
	} else {
		item.MysteryHint = api.cat.MysteryHint(realm.ID)
	}
	return ctx.JSON(http.StatusOK, item)
}

type currentRealmResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Level           int           `json:"level"`
	Theme           catalog.Theme `json:"theme"`
	IsTransitioning bool          `json:"is_transitioning"`
}

// currentRealm reports the realm the visitor currently inhabits along with
// its resolved theme. The transition flag stays up briefly after the active
// realm changes so clients can play the theme cross-fade.
func (api *catalogApi) currentRealm(ctx echo.Context) error {
	s := api.sessions.get(ctx)

	realm := s.evaluator.CurrentRealm(s.tracker.CompletedCount())
	theme := s.themes.Resolve(realm.ID)
	return ctx.JSON(http.StatusOK, currentRealmResponse{
		ID:              realm.ID,
		Name:            realm.Name,
		Level:           realm.Level,
		Theme:           theme,
		IsTransitioning: s.themes.IsTransitioning(),
	})
}

func (api *catalogApi) realmTheme(ctx echo.Context) error {
	s := api.sessions.get(ctx)

	realm, err := api.cat.Realm(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.themes.Resolve(realm.ID))
}

type courseDetail struct {
	catalog.Course
	RealmID     string `json:"realm_id"`
	IsCompleted bool   `json:"is_completed"`
}

func (api *catalogApi) retrieveCourse(ctx echo.Context) error {
	s := api.sessions.get(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	course, err := api.cat.Course(id)
	if err != nil {
		return err
	}
	realmID, err := api.cat.RealmOfCourse(id)
	if err != nil {
		return errors.Wrap(err, "resolving course realm")
	}
	return ctx.JSON(http.StatusOK, courseDetail{
		Course:      course,
		RealmID:     realmID,
		IsCompleted: s.tracker.IsCompleted(id),
	})
}

// openCourse runs the entitlement gate for premium course content.
// 401 asks the visitor to sign in first, 402 to upgrade.
func (api *catalogApi) openCourse(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	if _, err := api.cat.Course(id); err != nil {
		return err
	}

	usr, err := api.optionalUser(ctx)
	if err != nil {
		return err
	}
	return decisionResponse(ctx, user.CanOpenCourse(usr))
}

func (api *catalogApi) moduleAccess(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	course, err := api.cat.Course(id)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 || index >= len(course.Modules) {
		return errHttpNotFound
	}

	usr, err := api.optionalUser(ctx)
	if err != nil {
		return err
	}
	return decisionResponse(ctx, user.CanPlayModule(usr, index))
}

func (api *catalogApi) queryVideos(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.cat.Videos())
}

func (api *catalogApi) videoAccess(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	video, ok := api.cat.Video(id)
	if !ok {
		return errHttpNotFound
	}

	usr, err := api.optionalUser(ctx)
	if err != nil {
		return err
	}
	return decisionResponse(ctx, user.CanWatchVideo(usr, video))
}

func (api *catalogApi) queryPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.cat.Plans())
}

func (api *catalogApi) queryAchievements(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.cat.Achievements())
}

func (api *catalogApi) optionalUser(ctx echo.Context) (*user.User, error) {
	return optionalUser(ctx, api.userSvc)
}

func decisionResponse(ctx echo.Context, d user.Decision) error {
	switch d {
	case user.DecisionRequireSignIn:
		return errSignInRequired
	case user.DecisionRequireUpgrade:
		return errUpgradeRequired
	default:
		return ctx.JSON(http.StatusOK, AccessResponse{Decision: d.String()})
	}
}
