package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/livante/growthlab/core/newsletter"
)

type newsletterApi struct {
	svc *newsletter.Service
}

func registerNewsletterAPI(g *echo.Group, svc *newsletter.Service) {
	api := newsletterApi{svc: svc}
	g.POST("/newsletter", api.subscribe)
}

func (api *newsletterApi) subscribe(ctx echo.Context) error {
	var data newsletter.Subscription
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Subscription")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Subscribe(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}
