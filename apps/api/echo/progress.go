package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/progress"
)

type progressApi struct {
	sessions *sessionStore
	cat      *catalog.Catalog
}

func registerProgressAPI(g *echo.Group, sessions *sessionStore, cat *catalog.Catalog) {
	api := progressApi{sessions: sessions, cat: cat}

	pg := g.Group("/progress")
	pg.GET("", api.retrieve)
	pg.POST("/complete", api.completeCourse)
	pg.GET("/unlock", api.unlockState)
}

type (
	unlockState struct {
		State         string `json:"state"`
		TargetRealm   string `json:"target_realm,omitempty"`
		HintVisible   bool   `json:"hint_visible"`
		RevealedRealm string `json:"revealed_realm,omitempty"`
	}

	progressState struct {
		CompletedCourses int                   `json:"completed_courses"`
		TotalCourses     int                   `json:"total_courses"`
		OverallPercent   float64               `json:"overall_percent"`
		CurrentRealm     string                `json:"current_realm"`
		Realms           []progress.RealmView  `json:"realms"`
		Achievements     []achievementState    `json:"achievements"`
		Unlock           unlockState           `json:"unlock"`
	}

	achievementState struct {
		Label  string `json:"label"`
		Earned bool   `json:"earned"`
	}

	completeCourseResponse struct {
		NewlyCompleted bool          `json:"newly_completed"`
		Progress       progressState `json:"progress"`
	}
)

func (api *progressApi) completeCourse(ctx echo.Context) error {
	var data CompleteCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CompleteCourseRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s := api.sessions.get(ctx)

	newlyCompleted, err := s.tracker.CompleteCourse(data.CourseID)
	if err != nil {
		return err
	}

	// feed the unlock sequencer with the fresh numbers
	total := s.tracker.CompletedCount()
	percent := progress.OverallPercent(total, api.cat.TotalCourses())
	current := s.evaluator.CurrentRealm(total)
	next, ok := s.evaluator.NextRealm(current.ID)
	s.sequencer.Evaluate(percent, next.ID, ok)

	return ctx.JSON(http.StatusOK, completeCourseResponse{
		NewlyCompleted: newlyCompleted,
		Progress:       api.progressState(s),
	})
}

func (api *progressApi) retrieve(ctx echo.Context) error {
	s := api.sessions.get(ctx)
	return ctx.JSON(http.StatusOK, api.progressState(s))
}

func (api *progressApi) unlockState(ctx echo.Context) error {
	s := api.sessions.get(ctx)
	return ctx.JSON(http.StatusOK, api.unlock(s))
}

func (api *progressApi) unlock(s *browseSession) unlockState {
	st := unlockState{
		State:       s.sequencer.State().String(),
		TargetRealm: s.sequencer.Target(),
		HintVisible: s.sequencer.HintVisible(),
	}
	if realm, ok := s.takeRevealedRealm(); ok {
		st.RevealedRealm = realm
	}
	return st
}

func (api *progressApi) progressState(s *browseSession) progressState {
	total := s.tracker.CompletedCount()
	achievements := api.cat.Achievements()
	earned := make([]achievementState, 0, len(achievements))
	for i, label := range achievements {
		earned = append(earned, achievementState{Label: label, Earned: i < total})
	}

	return progressState{
		CompletedCourses: total,
		TotalCourses:     api.cat.TotalCourses(),
		OverallPercent:   progress.OverallPercent(total, api.cat.TotalCourses()),
		CurrentRealm:     s.evaluator.CurrentRealm(total).ID,
		Realms:           s.evaluator.RealmViews(s.tracker),
		Achievements:     earned,
		Unlock:           api.unlock(s),
	}
}
