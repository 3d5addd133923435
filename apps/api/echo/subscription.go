package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	subscriptionsvc "github.com/trezcool/hostela/services/subscription"
)

type subscriptionApi struct {
	client *subscriptionsvc.Client
}

// registerSubscriptionAPI exposes the external subscription backend as a
// read-only passthrough. Plans are public; the current subscription forwards
// the caller's bearer token upstream.
func registerSubscriptionAPI(g *echo.Group, jwt echo.MiddlewareFunc, client *subscriptionsvc.Client) {
	api := subscriptionApi{client: client}

	sg := g.Group("/subscriptions")
	sg.GET("/plans", api.plans)
	sg.GET("/current", api.current, jwt)
}

func (api *subscriptionApi) plans(ctx echo.Context) error {
	plans, err := api.client.Plans(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching plans")
	}
	if plans == nil {
		plans = []subscriptionsvc.Plan{}
	}
	return ctx.JSON(http.StatusOK, plans)
}

func (api *subscriptionApi) current(ctx echo.Context) error {
	token := strings.TrimPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	sub, err := api.client.Current(ctx.Request().Context(), token)
	if err != nil {
		return errors.Wrap(err, "fetching current subscription")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"subscription": sub})
}
