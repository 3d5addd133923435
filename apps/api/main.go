package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoapi "github.com/trezcool/hostela/apps/api/echo"
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
	emailsvc "github.com/trezcool/hostela/services/email"
	sendgridmail "github.com/trezcool/hostela/services/email/sendgrid"
	logsvc "github.com/trezcool/hostela/services/logger"
	subscriptionsvc "github.com/trezcool/hostela/services/subscription"
	inmemdb "github.com/trezcool/hostela/storage/database/inmem"
)

const shutdownTimeout = 20 * time.Second

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	db, err := inmemdb.Open(true /* seed */)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}

	// repositories
	residentRepo := inmemdb.NewResidentRepository(db)
	roomRepo := inmemdb.NewRoomRepository(db)
	employeeRepo := inmemdb.NewEmployeeRepository(db)
	feeRepo := inmemdb.NewFeeRepository(db)
	expenseRepo := inmemdb.NewExpenseRepository(db)
	messRepo := inmemdb.NewMessRepository(db)
	notificationRepo := inmemdb.NewNotificationRepository(db)
	settingsRepo := inmemdb.NewSettingsRepository(db)
	userRepo := inmemdb.NewUserRepository(db)

	// notification gateway; nothing but the console in DEV
	var gateway notification.Gateway
	if core.Conf.Debug {
		gateway = emailsvc.NewConsoleService()
	} else {
		gateway = sendgridmail.NewService(
			core.Conf.SendgridAPIKey,
			core.Conf.AppName,
			core.Conf.DefaultFromEmail.Address,
			logger,
		)
	}

	// services
	residentSvc := resident.NewService(residentRepo)
	roomSvc := room.NewService(roomRepo, residentRepo)
	employeeSvc := employee.NewService(employeeRepo)
	feeSvc := fee.NewService(feeRepo, residentRepo)
	expenseSvc := expense.NewService(expenseRepo)
	messSvc := mess.NewService(messRepo, residentRepo)
	notificationSvc := notification.NewService(notificationRepo, residentRepo, feeRepo, gateway, logger)
	dashboardSvc := dashboard.NewService(residentSvc, roomSvc, feeSvc, expenseSvc)
	settingsSvc := settings.NewService(settingsRepo)
	userSvc := user.NewService(userRepo)

	subscriptionClient := subscriptionsvc.NewClient(core.Conf.Subscription.BaseURL, core.Conf.Subscription.Timeout)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", core.Conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Address:         core.Conf.Server.Addr(),
		Logger:          logger,
		ResidentSvc:     residentSvc,
		RoomSvc:         roomSvc,
		EmployeeSvc:     employeeSvc,
		FeeSvc:          feeSvc,
		ExpenseSvc:      expenseSvc,
		MessSvc:         messSvc,
		NotificationSvc: notificationSvc,
		DashboardSvc:    dashboardSvc,
		SettingsSvc:     settingsSvc,
		UserSvc:         userSvc,

		SubscriptionClient: subscriptionClient,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = server.Stop(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
		}
	}
}
