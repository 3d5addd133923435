package notification_test

import (
	"io"
	"log"
	"net/mail"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/notification"
	"github.com/trezcool/hostela/core/resident"
	inmemdb "github.com/trezcool/hostela/storage/database/inmem"
)

// gatewayStub records delivered messages and fails on demand.
type gatewayStub struct {
	delivered []*core.EmailMessage
	err       error
}

func (g *gatewayStub) Deliver(msg *core.EmailMessage) error {
	if g.err != nil {
		return g.err
	}
	g.delivered = append(g.delivered, msg)
	return nil
}

func setup(t *testing.T) (*notification.Service, *gatewayStub, *resident.Service, *fee.Service) {
	t.Helper()

	db, err := inmemdb.Open(false)
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	resRepo := inmemdb.NewResidentRepository(db)
	feeRepo := inmemdb.NewFeeRepository(db)
	gw := &gatewayStub{}
	logger := core.NewStdLogger(log.New(io.Discard, "", 0))
	svc := notification.NewService(inmemdb.NewNotificationRepository(db), resRepo, feeRepo, gw, logger)
	return svc, gw, resident.NewService(resRepo), fee.NewService(feeRepo, resRepo)
}

func createResident(t *testing.T, svc *resident.Service, name, email string) resident.Resident {
	t.Helper()

	res, err := svc.Create(resident.NewResident{
		Name:             name,
		FatherName:       name + " Senior",
		CNIC:             "35202-1234567-1",
		Phone:            "0300-1112233",
		Email:            null.NewString(email, email != ""),
		EmergencyContact: "0301-1112233",
		Address:          "Street 5",
		City:             "Lahore",
		Occupation:       "Student",
		RoomID:           "RM001",
		BedNumber:        1,
		JoinDate:         time.Now(),
		MonthlyRent:      15000,
	})
	if err != nil {
		t.Fatalf("creating resident: %v", err)
	}
	return res
}

func TestService_Create_rendersTemplate(t *testing.T) {
	svc, _, resSvc, feeSvc := setup(t)
	res := createResident(t, resSvc, "Ali Raza", "ali@mail.com")

	due := time.Now().AddDate(0, 0, 10)
	if _, err := feeSvc.Create(fee.NewFeeTransaction{
		ResidentID: res.ID,
		Type:       fee.TypeRent,
		Amount:     15000,
		Month:      "2026-08",
		DueDate:    due,
	}); err != nil {
		t.Fatalf("creating fee: %v", err)
	}

	tpl, err := svc.CreateTemplate(notification.NewTemplate{
		Name:            "Rent Reminder",
		Type:            notification.TypeFeeReminder,
		MessageTemplate: "Dear {name}, Rs. {amount} for {month} is due on {dueDate}.",
		Channel:         notification.ChannelSMS,
	})
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}

	n, err := svc.Create(notification.NewNotification{
		Type:        notification.TypeFeeReminder,
		Title:       "Rent Due",
		TemplateID:  tpl.ID,
		RecipientID: null.StringFrom(res.ID),
		Channel:     notification.ChannelSMS,
	})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	want := "Dear Ali Raza, Rs. 15000 for 2026-08 is due on " + due.Format("2006-01-02") + "."
	if n.Message != want {
		t.Errorf("Message = %q, want %q", n.Message, want)
	}
	if n.Status != notification.StatusPending {
		t.Errorf("Status = %q, want %q", n.Status, notification.StatusPending)
	}
}

func TestService_Create_templateChannelInherited(t *testing.T) {
	svc, _, _, _ := setup(t)

	tpl, err := svc.CreateTemplate(notification.NewTemplate{
		Name:            "Announcement",
		Type:            notification.TypeAnnouncement,
		MessageTemplate: "{message}",
		Channel:         notification.ChannelWhatsapp,
	})
	if err != nil {
		t.Fatalf("creating template: %v", err)
	}

	n, err := svc.Create(notification.NewNotification{
		Type:           notification.TypeAnnouncement,
		Title:          "Notice",
		Message:        "Mess closed on Friday",
		TemplateID:     tpl.ID,
		RecipientPhone: null.StringFrom("0300-5556677"),
	})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if n.Channel != notification.ChannelWhatsapp {
		t.Errorf("Channel = %q, want %q", n.Channel, notification.ChannelWhatsapp)
	}
	if n.Message != "Mess closed on Friday" {
		t.Errorf("Message = %q", n.Message)
	}
}

func TestService_Create_unknownTemplate(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.Create(notification.NewNotification{
		Type:       notification.TypeAlert,
		Title:      "Alert",
		TemplateID: "TPL9999",
		Channel:    notification.ChannelSMS,
	})
	if !core.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestService_Send(t *testing.T) {
	t.Run("email recipient", func(t *testing.T) {
		svc, gw, resSvc, _ := setup(t)
		res := createResident(t, resSvc, "Ali Raza", "ali@mail.com")

		n, err := svc.Create(notification.NewNotification{
			Type:        notification.TypeAnnouncement,
			Title:       "Notice",
			Message:     "Water off tomorrow",
			RecipientID: null.StringFrom(res.ID),
			Channel:     notification.ChannelSMS,
		})
		if err != nil {
			t.Fatalf("Create(): %v", err)
		}

		sent, err := svc.Send(n.ID)
		if err != nil {
			t.Fatalf("Send(): %v", err)
		}
		if sent.Status != notification.StatusSent {
			t.Errorf("Status = %q, want %q", sent.Status, notification.StatusSent)
		}
		if !sent.SentAt.Valid {
			t.Error("SentAt not set")
		}
		if len(gw.delivered) != 1 {
			t.Fatalf("delivered %d messages, want 1", len(gw.delivered))
		}
		want := mail.Address{Name: "Ali Raza", Address: "ali@mail.com"}
		if got := gw.delivered[0].To[0]; got != want {
			t.Errorf("To = %v, want %v", got, want)
		}
	})

	t.Run("phone fallback", func(t *testing.T) {
		svc, gw, resSvc, _ := setup(t)
		res := createResident(t, resSvc, "Bilal Ahmed", "") // no email

		n, err := svc.Create(notification.NewNotification{
			Type:           notification.TypeAnnouncement,
			Title:          "Notice",
			Message:        "Water off tomorrow",
			RecipientID:    null.StringFrom(res.ID),
			RecipientPhone: null.StringFrom("0300-9998877"),
			Channel:        notification.ChannelSMS,
		})
		if err != nil {
			t.Fatalf("Create(): %v", err)
		}

		if _, err = svc.Send(n.ID); err != nil {
			t.Fatalf("Send(): %v", err)
		}
		if len(gw.delivered) != 1 {
			t.Fatalf("delivered %d messages, want 1", len(gw.delivered))
		}
		if got, want := gw.delivered[0].To[0].Address, "0300-9998877@sms.hostela.local"; got != want {
			t.Errorf("To = %q, want %q", got, want)
		}
	})

	t.Run("gateway failure marks failed", func(t *testing.T) {
		svc, gw, resSvc, _ := setup(t)
		res := createResident(t, resSvc, "Ali Raza", "ali@mail.com")
		gw.err = errors.New("gateway down")

		n, err := svc.Create(notification.NewNotification{
			Type:        notification.TypeAlert,
			Title:       "Alert",
			Message:     "Generator fault",
			RecipientID: null.StringFrom(res.ID),
			Channel:     notification.ChannelSMS,
		})
		if err != nil {
			t.Fatalf("Create(): %v", err)
		}

		sent, err := svc.Send(n.ID)
		if err != nil {
			t.Fatalf("Send(): %v", err)
		}
		if sent.Status != notification.StatusFailed {
			t.Errorf("Status = %q, want %q", sent.Status, notification.StatusFailed)
		}
		if sent.SentAt.Valid {
			t.Error("SentAt set on failed delivery")
		}
	})

	t.Run("no recipient marks failed", func(t *testing.T) {
		svc, gw, _, _ := setup(t)

		n, err := svc.Create(notification.NewNotification{
			Type:    notification.TypeAnnouncement,
			Title:   "Notice",
			Message: "General notice",
			Channel: notification.ChannelSMS,
		})
		if err != nil {
			t.Fatalf("Create(): %v", err)
		}

		sent, err := svc.Send(n.ID)
		if err != nil {
			t.Fatalf("Send(): %v", err)
		}
		if sent.Status != notification.StatusFailed {
			t.Errorf("Status = %q, want %q", sent.Status, notification.StatusFailed)
		}
		if len(gw.delivered) != 0 {
			t.Errorf("delivered %d messages, want 0", len(gw.delivered))
		}
	})

	t.Run("unknown notification", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		if _, err := svc.Send("NTF9999"); !core.IsNotFound(err) {
			t.Errorf("err = %v, want not found", err)
		}
	})
}

func TestService_Filter(t *testing.T) {
	svc, _, _, _ := setup(t)

	mk := func(typ, title, channel string) notification.Notification {
		n, err := svc.Create(notification.NewNotification{
			Type:           typ,
			Title:          title,
			Message:        title + " body",
			RecipientPhone: null.StringFrom("0300-0001122"),
			Channel:        channel,
		})
		if err != nil {
			t.Fatalf("Create(): %v", err)
		}
		return n
	}
	mk(notification.TypeAnnouncement, "Mess Closed", notification.ChannelSMS)
	alert := mk(notification.TypeAlert, "Fire Drill", notification.ChannelWhatsapp)
	if _, err := svc.Send(alert.ID); err != nil {
		t.Fatalf("Send(): %v", err)
	}

	got, err := svc.Filter(notification.QueryFilter{Type: notification.TypeAlert})
	if err != nil {
		t.Fatalf("Filter(): %v", err)
	}
	if len(got) != 1 || got[0].ID != alert.ID {
		t.Errorf("type filter returned %d results", len(got))
	}

	got, err = svc.Filter(notification.QueryFilter{Status: notification.StatusSent})
	if err != nil {
		t.Fatalf("Filter(): %v", err)
	}
	if len(got) != 1 || got[0].ID != alert.ID {
		t.Errorf("status filter returned %d results", len(got))
	}

	got, err = svc.Filter(notification.QueryFilter{Search: "drill"})
	if err != nil {
		t.Fatalf("Filter(): %v", err)
	}
	if len(got) != 1 || got[0].ID != alert.ID {
		t.Errorf("search returned %d results", len(got))
	}
}
