package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/settings"
)

type settingsApi struct {
	svc *settings.Service
}

func registerSettingsAPI(g *echo.Group, svc *settings.Service) {
	api := settingsApi{svc: svc}

	sg := g.Group("/settings")
	sg.GET("", api.retrieve)
	sg.PUT("", api.update, adminMiddleware())
}

func (api *settingsApi) retrieve(ctx echo.Context) error {
	s, err := api.svc.Get()
	if err != nil {
		return errors.Wrap(err, "getting settings")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *settingsApi) update(ctx echo.Context) error {
	var data settings.UpdateSettings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSettings")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	s, err := api.svc.Update(data)
	if err != nil {
		return errors.Wrap(err, "updating settings")
	}
	return ctx.JSON(http.StatusOK, s)
}
