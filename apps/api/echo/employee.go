package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/employee"
)

type employeeApi struct {
	svc *employee.Service
}

func registerEmployeeAPI(g *echo.Group, svc *employee.Service) {
	api := employeeApi{svc: svc}

	eg := g.Group("/employees")
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.GET("/:id", api.retrieve)
	eg.PUT("/:id", api.update)
	eg.DELETE("/:id", api.destroy, adminMiddleware())

	eg.GET("/:id/leaves", api.queryLeaves)
	eg.POST("/:id/leaves", api.addLeave)
	eg.PUT("/:id/leaves/:lid", api.setLeaveStatus)

	eg.GET("/:id/salaries", api.querySalaries)
	eg.POST("/:id/salaries", api.addSalary)
}

func (api *employeeApi) query(ctx echo.Context) error {
	var filter employee.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	employees, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying employees")
	}
	return respondList(ctx, employees, ord, pg)
}

func (api *employeeApi) create(ctx echo.Context) error {
	var data employee.NewEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEmployee")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	emp, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating employee")
	}
	return ctx.JSON(http.StatusCreated, emp)
}

func (api *employeeApi) retrieve(ctx echo.Context) error {
	emp, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding employee by ID")
	}
	return ctx.JSON(http.StatusOK, emp)
}

func (api *employeeApi) update(ctx echo.Context) error {
	var data employee.UpdateEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEmployee")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	emp, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating employee")
	}
	return ctx.JSON(http.StatusOK, emp)
}

func (api *employeeApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting employee")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *employeeApi) queryLeaves(ctx echo.Context) error {
	leaves, err := api.svc.Leaves(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying leaves")
	}
	if leaves == nil {
		leaves = []employee.LeaveRecord{}
	}
	return ctx.JSON(http.StatusOK, leaves)
}

func (api *employeeApi) addLeave(ctx echo.Context) error {
	var data employee.NewLeaveRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLeaveRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	leave, err := api.svc.AddLeave(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "adding leave")
	}
	return ctx.JSON(http.StatusCreated, leave)
}

func (api *employeeApi) setLeaveStatus(ctx echo.Context) error {
	var data employee.UpdateLeaveRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateLeaveRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	leave, err := api.svc.SetLeaveStatus(ctx.Param("lid"), data)
	if err != nil {
		return errors.Wrap(err, "updating leave status")
	}
	return ctx.JSON(http.StatusOK, leave)
}

func (api *employeeApi) querySalaries(ctx echo.Context) error {
	salaries, err := api.svc.Salaries(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying salaries")
	}
	if salaries == nil {
		salaries = []employee.SalaryRecord{}
	}
	return ctx.JSON(http.StatusOK, salaries)
}

func (api *employeeApi) addSalary(ctx echo.Context) error {
	var data employee.NewSalaryRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSalaryRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sal, err := api.svc.AddSalary(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "adding salary record")
	}
	return ctx.JSON(http.StatusCreated, sal)
}
