package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core/story"
)

type storyApi struct {
	svc *story.Service
}

func registerStoryAPI(g *echo.Group, svc *story.Service) {
	api := storyApi{svc: svc}

	sg := g.Group("/stories")
	sg.GET("", api.queryAll)
	sg.GET("/:id", api.retrieve)
	sg.POST("", api.create)
}

func (api *storyApi) queryAll(ctx echo.Context) error {
	stories, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stories)
}

func (api *storyApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *storyApi) create(ctx echo.Context) error {
	var data story.NewStory
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStory")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	st, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}
