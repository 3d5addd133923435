package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/dashboard"
)

type dashboardApi struct {
	svc *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service) {
	api := dashboardApi{svc: svc}

	dg := g.Group("/dashboard")
	dg.GET("/stats", api.stats)
	dg.GET("/monthly", api.monthly)
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing dashboard stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *dashboardApi) monthly(ctx echo.Context) error {
	data, err := api.svc.Monthly()
	if err != nil {
		return errors.Wrap(err, "computing monthly data")
	}
	return ctx.JSON(http.StatusOK, data)
}
