package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/room"
)

type roomApi struct {
	svc *room.Service
}

func registerRoomAPI(g *echo.Group, svc *room.Service) {
	api := roomApi{svc: svc}

	rg := g.Group("/rooms")
	rg.GET("", api.query)
	rg.POST("", api.create)
	rg.GET("/:id", api.retrieve)
	rg.GET("/:id/beds", api.beds)
	rg.PUT("/:id", api.update)
	rg.DELETE("/:id", api.destroy, adminMiddleware())
}

func (api *roomApi) query(ctx echo.Context) error {
	var filter room.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	rooms, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying rooms")
	}
	return respondList(ctx, rooms, ord, pg)
}

func (api *roomApi) create(ctx echo.Context) error {
	var data room.NewRoom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRoom")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rm, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating room")
	}
	return ctx.JSON(http.StatusCreated, rm)
}

func (api *roomApi) retrieve(ctx echo.Context) error {
	rm, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding room by ID")
	}
	return ctx.JSON(http.StatusOK, rm)
}

func (api *roomApi) beds(ctx echo.Context) error {
	beds, err := api.svc.Beds(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "projecting beds")
	}
	return ctx.JSON(http.StatusOK, beds)
}

func (api *roomApi) update(ctx echo.Context) error {
	var data room.UpdateRoom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRoom")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rm, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating room")
	}
	return ctx.JSON(http.StatusOK, rm)
}

func (api *roomApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting room")
	}
	return ctx.NoContent(http.StatusNoContent)
}
