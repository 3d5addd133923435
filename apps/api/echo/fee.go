package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/fee"
)

type feeApi struct {
	svc *fee.Service
}

func registerFeeAPI(g *echo.Group, svc *fee.Service) {
	api := feeApi{svc: svc}

	fg := g.Group("/fees")
	fg.GET("", api.query)
	fg.POST("", api.create)
	fg.GET("/stats/monthly", api.monthlyStats)
	fg.GET("/stats/pending-total", api.pendingTotal)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id", api.update)
	fg.DELETE("/:id", api.destroy, adminMiddleware())
	fg.POST("/:id/payments", api.settle)
}

func (api *feeApi) query(ctx echo.Context) error {
	var filter fee.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	rows, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying fees")
	}
	return respondList(ctx, rows, ord, pg)
}

func (api *feeApi) create(ctx echo.Context) error {
	var data fee.NewFeeTransaction
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeeTransaction")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ft, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating fee")
	}
	return ctx.JSON(http.StatusCreated, ft)
}

func (api *feeApi) retrieve(ctx echo.Context) error {
	ft, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding fee by ID")
	}
	return ctx.JSON(http.StatusOK, ft)
}

func (api *feeApi) update(ctx echo.Context) error {
	var data fee.UpdateFeeTransaction
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFeeTransaction")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ft, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating fee")
	}
	return ctx.JSON(http.StatusOK, ft)
}

func (api *feeApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting fee")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *feeApi) settle(ctx echo.Context) error {
	var data fee.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pmt, err := api.svc.Settle(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "settling fee")
	}
	return ctx.JSON(http.StatusCreated, pmt)
}

func (api *feeApi) monthlyStats(ctx echo.Context) error {
	stats, err := api.svc.MonthlyStats()
	if err != nil {
		return errors.Wrap(err, "computing monthly stats")
	}
	if stats == nil {
		stats = []fee.MonthlyStat{}
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *feeApi) pendingTotal(ctx echo.Context) error {
	total, err := api.svc.TotalPendingAmount()
	if err != nil {
		return errors.Wrap(err, "computing pending total")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"total": total})
}
