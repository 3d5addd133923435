package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core/notification"
)

type notificationApi struct {
	svc *notification.Service
}

func registerNotificationAPI(g *echo.Group, svc *notification.Service) {
	api := notificationApi{svc: svc}

	ng := g.Group("/notifications")
	ng.GET("", api.query)
	ng.POST("", api.create)
	ng.GET("/:id", api.retrieve)
	ng.DELETE("/:id", api.destroy, adminMiddleware())
	ng.POST("/:id/send", api.send)

	tg := g.Group("/notification-templates")
	tg.GET("", api.queryTemplates)
	tg.POST("", api.createTemplate)
	tg.GET("/:id", api.retrieveTemplate)
	tg.PUT("/:id", api.updateTemplate)
	tg.DELETE("/:id", api.destroyTemplate, adminMiddleware())
}

func (api *notificationApi) query(ctx echo.Context) error {
	var filter notification.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ord, pg := bindListParams(ctx)

	notifs, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return respondList(ctx, notifs, ord, pg)
}

func (api *notificationApi) create(ctx echo.Context) error {
	var data notification.NewNotification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotification")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	n, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating notification")
	}
	return ctx.JSON(http.StatusCreated, n)
}

func (api *notificationApi) retrieve(ctx echo.Context) error {
	n, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding notification by ID")
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *notificationApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting notification")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *notificationApi) send(ctx echo.Context) error {
	n, err := api.svc.Send(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "sending notification")
	}
	return ctx.JSON(http.StatusOK, n)
}

func (api *notificationApi) queryTemplates(ctx echo.Context) error {
	ord, pg := bindListParams(ctx)

	tpls, err := api.svc.QueryAllTemplates()
	if err != nil {
		return errors.Wrap(err, "querying templates")
	}
	return respondList(ctx, tpls, ord, pg)
}

func (api *notificationApi) createTemplate(ctx echo.Context) error {
	var data notification.NewTemplate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTemplate")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tpl, err := api.svc.CreateTemplate(data)
	if err != nil {
		return errors.Wrap(err, "creating template")
	}
	return ctx.JSON(http.StatusCreated, tpl)
}

func (api *notificationApi) retrieveTemplate(ctx echo.Context) error {
	tpl, err := api.svc.GetTemplateByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding template by ID")
	}
	return ctx.JSON(http.StatusOK, tpl)
}

func (api *notificationApi) updateTemplate(ctx echo.Context) error {
	var data notification.UpdateTemplate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTemplate")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tpl, err := api.svc.UpdateTemplate(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating template")
	}
	return ctx.JSON(http.StatusOK, tpl)
}

func (api *notificationApi) destroyTemplate(ctx echo.Context) error {
	if err := api.svc.DeleteTemplate(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting template")
	}
	return ctx.NoContent(http.StatusNoContent)
}
