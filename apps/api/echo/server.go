package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/dashboard"
	"github.com/trezcool/hostela/core/employee"
	"github.com/trezcool/hostela/core/expense"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/mess"
	"github.com/trezcool/hostela/core/notification"
	"github.com/trezcool/hostela/core/resident"
	"github.com/trezcool/hostela/core/room"
	"github.com/trezcool/hostela/core/settings"
	"github.com/trezcool/hostela/core/user"
	subscriptionsvc "github.com/trezcool/hostela/services/subscription"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger

		ResidentSvc     *resident.Service
		RoomSvc         *room.Service
		EmployeeSvc     *employee.Service
		FeeSvc          *fee.Service
		ExpenseSvc      *expense.Service
		MessSvc         *mess.Service
		NotificationSvc *notification.Service
		DashboardSvc    *dashboard.Service
		SettingsSvc     *settings.Service
		UserSvc         *user.Service

		SubscriptionClient *subscriptionsvc.Client
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(v1, jwt, s.opts.UserSvc)
	registerSubscriptionAPI(v1, jwt, s.opts.SubscriptionClient)

	ag := v1.Group("", jwt)
	registerResidentAPI(ag, s.opts.ResidentSvc, s.opts.RoomSvc)
	registerRoomAPI(ag, s.opts.RoomSvc)
	registerEmployeeAPI(ag, s.opts.EmployeeSvc)
	registerFeeAPI(ag, s.opts.FeeSvc)
	registerExpenseAPI(ag, s.opts.ExpenseSvc)
	registerMessAPI(ag, s.opts.MessSvc)
	registerNotificationAPI(ag, s.opts.NotificationSvc)
	registerDashboardAPI(ag, s.opts.DashboardSvc)
	registerSettingsAPI(ag, s.opts.SettingsSvc)
	registerUserAPI(ag, s.opts.UserSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Errors() <-chan error { return s.errors }

func (s *server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Hostela API!")
}
