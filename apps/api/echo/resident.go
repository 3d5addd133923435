package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
)

type residentApi struct {
	svc   *resident.Service
	rooms *room.Service
}

func registerResidentAPI(g *echo.Group, svc *resident.Service, rooms *room.Service) {
	api := residentApi{svc: svc, rooms: rooms}

	rg := g.Group("/residents")
	rg.GET("", api.query)
	rg.POST("", api.create)
	rg.GET("/:id", api.retrieve)
	rg.PUT("/:id", api.update)
	rg.DELETE("/:id", api.destroy, adminMiddleware())
}

// residentRow is a list row; roomNumber is re-resolved on every render.
type residentRow struct {
	resident.Resident
	RoomNumber string `json:"roomNumber"`
}

func (api *residentApi) query(ctx echo.Context) error {
	var filter resident.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	residents, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying residents")
	}

	rows, err := api.rows(residents)
	if err != nil {
		return errors.Wrap(err, "resolving room numbers")
	}
	return respondList(ctx, rows, ord, pg)
}

func (api *residentApi) create(ctx echo.Context) error {
	var data resident.NewResident
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResident")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating resident")
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *residentApi) retrieve(ctx echo.Context) error {
	res, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding resident by ID")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *residentApi) update(ctx echo.Context) error {
	var data resident.UpdateResident
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateResident")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating resident")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *residentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting resident")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *residentApi) rows(residents []resident.Resident) ([]residentRow, error) {
	rooms, err := api.rooms.QueryAll()
	if err != nil {
		return nil, err
	}
	numbers := make(map[string]string, len(rooms))
	for _, rm := range rooms {
		numbers[rm.ID] = rm.RoomNumber
	}

	rows := make([]residentRow, 0, len(residents))
	for _, res := range residents {
		number, ok := numbers[res.RoomID]
		if !ok {
			number = "Unknown"
		}
		rows = append(rows, residentRow{Resident: res, RoomNumber: number})
	}
	return rows, nil
}
