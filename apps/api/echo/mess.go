package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/mess"
)

type messApi struct {
	svc *mess.Service
}

func registerMessAPI(g *echo.Group, svc *mess.Service) {
	api := messApi{svc: svc}

	mg := g.Group("/mess")

	eg := mg.Group("/expenses")
	eg.GET("", api.queryExpenses)
	eg.POST("", api.createExpense)
	eg.GET("/stats/categories", api.categoryStats)
	eg.GET("/stats/monthly", api.monthlyStats)
	eg.GET("/:id", api.retrieveExpense)
	eg.PUT("/:id", api.updateExpense)
	eg.DELETE("/:id", api.destroyExpense, adminMiddleware())

	mmg := mg.Group("/members")
	mmg.GET("", api.queryMembers)
	mmg.POST("", api.addMember)
	mmg.GET("/:id", api.retrieveMember)
	mmg.PUT("/:id", api.updateMember)
	mmg.DELETE("/:id", api.destroyMember, adminMiddleware())
}

func (api *messApi) queryExpenses(ctx echo.Context) error {
	var filter mess.ExpenseFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to ExpenseFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	expenses, err := api.svc.FilterExpenses(filter)
	if err != nil {
		return errors.Wrap(err, "querying mess expenses")
	}
	return respondList(ctx, expenses, ord, pg)
}

func (api *messApi) createExpense(ctx echo.Context) error {
	var data mess.NewExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	exp, err := api.svc.CreateExpense(data)
	if err != nil {
		return errors.Wrap(err, "creating mess expense")
	}
	return ctx.JSON(http.StatusCreated, exp)
}

func (api *messApi) retrieveExpense(ctx echo.Context) error {
	exp, err := api.svc.GetExpenseByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding mess expense by ID")
	}
	return ctx.JSON(http.StatusOK, exp)
}

func (api *messApi) updateExpense(ctx echo.Context) error {
	var data mess.UpdateExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	exp, err := api.svc.UpdateExpense(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating mess expense")
	}
	return ctx.JSON(http.StatusOK, exp)
}

func (api *messApi) destroyExpense(ctx echo.Context) error {
	if err := api.svc.DeleteExpense(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting mess expense")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *messApi) categoryStats(ctx echo.Context) error {
	totals, err := api.svc.CategoryTotals()
	if err != nil {
		return errors.Wrap(err, "computing category totals")
	}
	if totals == nil {
		totals = []mess.CategoryTotal{}
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *messApi) monthlyStats(ctx echo.Context) error {
	totals, err := api.svc.MonthlyTotals()
	if err != nil {
		return errors.Wrap(err, "computing monthly totals")
	}
	if totals == nil {
		totals = []mess.MonthlyTotal{}
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api *messApi) queryMembers(ctx echo.Context) error {
	var filter mess.MemberFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to MemberFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	members, err := api.svc.FilterMembers(filter)
	if err != nil {
		return errors.Wrap(err, "querying mess members")
	}
	return respondList(ctx, members, ord, pg)
}

func (api *messApi) addMember(ctx echo.Context) error {
	var data mess.NewMember
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMember")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mem, err := api.svc.AddMember(data)
	if err != nil {
		return errors.Wrap(err, "adding mess member")
	}
	return ctx.JSON(http.StatusCreated, mem)
}

func (api *messApi) retrieveMember(ctx echo.Context) error {
	mem, err := api.svc.GetMemberByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding mess member by ID")
	}
	return ctx.JSON(http.StatusOK, mem)
}

func (api *messApi) updateMember(ctx echo.Context) error {
	var data mess.UpdateMember
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateMember")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mem, err := api.svc.UpdateMember(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating mess member")
	}
	return ctx.JSON(http.StatusOK, mem)
}

func (api *messApi) destroyMember(ctx echo.Context) error {
	if err := api.svc.DeleteMember(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting mess member")
	}
	return ctx.NoContent(http.StatusNoContent)
}
