package tests

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/trezcool/hostela/core"

	. "github.com/trezcool/hostela/apps/api/echo"
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
	emailsvc "github.com/trezcool/hostela/services/email"
	subscriptionsvc "github.com/trezcool/hostela/services/subscription"
	inmemdb "github.com/trezcool/hostela/storage/database/inmem"
)

var (
	app     Server
	usrRepo user.Repository

	resSvc   *resident.Service
	roomSvc  *room.Service
	empSvc   *employee.Service
	feeSvc   *fee.Service
	expSvc   *expense.Service
	messSvc  *mess.Service
	notifSvc *notification.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	if err := resetApp(); err != nil {
		fmt.Printf("resetApp(): %v", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// resetApp rebuilds the whole stack on a fresh, unseeded database.
func resetApp() error {
	db, err := inmemdb.Open(false /* seed */)
	if err != nil {
		return err
	}

	residentRepo := inmemdb.NewResidentRepository(db)
	roomRepo := inmemdb.NewRoomRepository(db)
	feeRepo := inmemdb.NewFeeRepository(db)
	usrRepo = inmemdb.NewUserRepository(db)

	gateway := emailsvc.NewConsoleServiceMock()
	logger := core.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))

	resSvc = resident.NewService(residentRepo)
	roomSvc = room.NewService(roomRepo, residentRepo)
	empSvc = employee.NewService(inmemdb.NewEmployeeRepository(db))
	feeSvc = fee.NewService(feeRepo, residentRepo)
	expSvc = expense.NewService(inmemdb.NewExpenseRepository(db))
	messSvc = mess.NewService(inmemdb.NewMessRepository(db), residentRepo)
	notifSvc = notification.NewService(inmemdb.NewNotificationRepository(db), residentRepo, feeRepo, gateway, logger)

	app = NewServer(&Options{
		DisableReqLogs:  true,
		Logger:          logger,
		ResidentSvc:     resSvc,
		RoomSvc:         roomSvc,
		EmployeeSvc:     empSvc,
		FeeSvc:          feeSvc,
		ExpenseSvc:      expSvc,
		MessSvc:         messSvc,
		NotificationSvc: notifSvc,
		DashboardSvc:    dashboard.NewService(resSvc, roomSvc, feeSvc, expSvc),
		SettingsSvc:     settings.NewService(inmemdb.NewSettingsRepository(db)),
		UserSvc:         user.NewService(usrRepo),

		SubscriptionClient: subscriptionsvc.NewClient("http://localhost:1", 0),
	})
	return nil
}

func resetAppT(t *testing.T) {
	t.Helper()
	if err := resetApp(); err != nil {
		t.Fatalf("resetApp(): %v", err)
	}
}
