package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/quiz"
)

type quizApi struct {
	sessions *sessionStore
	cat      *catalog.Catalog
}

func registerQuizAPI(g *echo.Group, sessions *sessionStore, cat *catalog.Catalog) {
	api := quizApi{sessions: sessions, cat: cat}

	qg := g.Group("/courses/:id/quiz")
	qg.POST("", api.start)
	qg.GET("", api.state)
	qg.POST("/answer", api.answer)
	qg.POST("/next", api.advance)
}

type (
	quizQuestionView struct {
		Index    int      `json:"index"`
		Total    int      `json:"total"`
		Question string   `json:"question"`
		Options  []string `json:"options"`
	}

	quizStateResponse struct {
		Phase    string            `json:"phase"`
		Score    int               `json:"score"`
		Total    int               `json:"total"`
		Question *quizQuestionView `json:"question,omitempty"`

		// set once the current question has been answered
		Selected      string `json:"selected,omitempty"`
		Correct       *bool  `json:"correct,omitempty"`
		CorrectAnswer string `json:"correct_answer,omitempty"`
		Explanation   string `json:"explanation,omitempty"`
	}

	quizAnswerResponse struct {
		Correct       bool   `json:"correct"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
		Score         int    `json:"score"`
	}
)

func (api *quizApi) courseID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	if _, err := api.cat.Course(id); err != nil {
		return 0, err
	}
	return id, nil
}

// start begins a fresh quiz for the course, shuffling the question bank
// once. Restarting replaces any quiz already in flight for that course.
func (api *quizApi) start(ctx echo.Context) error {
	id, err := api.courseID(ctx)
	if err != nil {
		return err
	}
	s := api.sessions.get(ctx)

	session, err := quiz.NewSession(api.cat.QuizBank(id))
	if err != nil {
		return errors.Wrap(err, "starting quiz")
	}

	s.mu.Lock()
	s.quizzes[id] = session
	s.mu.Unlock()

	return ctx.JSON(http.StatusCreated, api.stateOf(session))
}

func (api *quizApi) state(ctx echo.Context) error {
	id, err := api.courseID(ctx)
	if err != nil {
		return err
	}
	s := api.sessions.get(ctx)

	session, err := api.quizOf(s, id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.stateOf(session))
}

func (api *quizApi) answer(ctx echo.Context) error {
	var data AnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	id, err := api.courseID(ctx)
	if err != nil {
		return err
	}
	s := api.sessions.get(ctx)

	session, err := api.quizOf(s, id)
	if err != nil {
		return err
	}
	q, _, ok := session.Current()
	if !ok {
		return quizError(quiz.ErrFinished)
	}

	correct, err := session.SubmitAnswer(data.Answer)
	if err != nil {
		return quizError(err)
	}
	return ctx.JSON(http.StatusOK, quizAnswerResponse{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Score:         session.Score(),
	})
}

func (api *quizApi) advance(ctx echo.Context) error {
	id, err := api.courseID(ctx)
	if err != nil {
		return err
	}
	s := api.sessions.get(ctx)

	session, err := api.quizOf(s, id)
	if err != nil {
		return err
	}
	if _, err := session.Advance(); err != nil {
		return quizError(err)
	}
	return ctx.JSON(http.StatusOK, api.stateOf(session))
}

func (api *quizApi) quizOf(s *browseSession, courseID int) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.quizzes[courseID]; ok {
		return session, nil
	}
	return nil, errHttpNotFound
}

func (api *quizApi) stateOf(session *quiz.Session) quizStateResponse {
	resp := quizStateResponse{
		Phase: session.Phase().String(),
		Score: session.Score(),
		Total: session.Len(),
	}
	q, idx, ok := session.Current()
	if !ok {
		return resp
	}
	resp.Question = &quizQuestionView{
		Index:    idx,
		Total:    session.Len(),
		Question: q.Question,
		Options:  q.Options,
	}
	if session.Phase() == quiz.PhaseAnswered {
		selected := session.Selected()
		correct := selected == q.CorrectAnswer
		resp.Selected = selected
		resp.Correct = &correct
		resp.CorrectAnswer = q.CorrectAnswer
		resp.Explanation = q.Explanation
	}
	return resp
}

// quizError maps quiz state machine errors onto 409s so clients can tell
// a stale double-tap from a real failure.
func quizError(err error) error {
	switch err {
	case quiz.ErrAlreadyAnswered, quiz.ErrNotAnswered, quiz.ErrFinished:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case quiz.ErrInvalidOption:
		return core.NewValidationError(err, core.FieldError{Field: "answer", Error: err.Error()})
	default:
		return err
	}
}
