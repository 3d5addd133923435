package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/expense"
)

type expenseApi struct {
	svc *expense.Service
}

func registerExpenseAPI(g *echo.Group, svc *expense.Service) {
	api := expenseApi{svc: svc}

	eg := g.Group("/expenses")
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.GET("/stats/categories", api.categoryStats)
	eg.GET("/stats/monthly", api.monthlyStats)
	eg.GET("/:id", api.retrieve)
	eg.PUT("/:id", api.update)
	eg.DELETE("/:id", api.destroy, adminMiddleware())
}

func (api *expenseApi) query(ctx echo.Context) error {
	var filter expense.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	expenses, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying expenses")
	}
	return respondList(ctx, expenses, ord, pg)
}

func (api *expenseApi) create(ctx echo.Context) error {
	var data expense.NewExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	exp, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating expense")
	}
	return ctx.JSON(http.StatusCreated, exp)
}

func (api *expenseApi) retrieve(ctx echo.Context) error {
	exp, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding expense by ID")
	}
	return ctx.JSON(http.StatusOK, exp)
}

func (api *expenseApi) update(ctx echo.Context) error {
	var data expense.UpdateExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	exp, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating expense")
	}
	return ctx.JSON(http.StatusOK, exp)
}

func (api *expenseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting expense")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *expenseApi) categoryStats(ctx echo.Context) error {
	totals, err := api.svc.CategoryTotals()
	if err != nil {
		return errors.Wrap(err, "computing category totals")
	}
	if totals == nil {
		totals = []expense.CategoryTotal{}
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *expenseApi) monthlyStats(ctx echo.Context) error {
	totals, err := api.svc.MonthlyTotals()
	if err != nil {
		return errors.Wrap(err, "computing monthly totals")
	}
	if totals == nil {
		totals = []expense.MonthlyTotal{}
	}
	return ctx.JSON(http.StatusOK, totals)
}
