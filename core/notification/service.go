package notification

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/fee"
	"github.com/trezcool/hostela/core/resident"
)

var (
	ErrNotFound         = core.NewNotFoundError("notification not found")
	ErrTemplateNotFound = core.NewNotFoundError("notification template not found")
)

type (
	// Gateway delivers a rendered notification to its recipient.
	Gateway interface {
		Deliver(msg *core.EmailMessage) error
	}

	Repository interface {
		CreateNotification(n Notification) (Notification, error)
		QueryAllNotifications() ([]Notification, error)
		GetNotificationByID(id string) (Notification, error)
		UpdateNotification(n Notification, status string) (Notification, error)
		DeleteNotification(id string) error

		CreateTemplate(tpl Template) (Template, error)
		QueryAllTemplates() ([]Template, error)
		GetTemplateByID(id string) (Template, error)
		UpdateTemplate(tpl Template, typ, channel string, isActive *bool) (Template, error)
		DeleteTemplate(id string) error
	}

	Service struct {
		repo      Repository
		residents resident.Repository
		fees      fee.Repository
		gateway   Gateway
		logger    core.Logger
	}
)

func NewService(repo Repository, residents resident.Repository, fees fee.Repository, gateway Gateway, logger core.Logger) *Service {
	return &Service{
		repo:      repo,
		residents: residents,
		fees:      fees,
		gateway:   gateway,
		logger:    logger,
	}
}

// Create records a pending notification. When a template is referenced, its
// placeholders are rendered from the target resident and their latest fee.
func (svc *Service) Create(nn NewNotification) (Notification, error) {
	n := Notification{
		Type:           nn.Type,
		Title:          nn.Title,
		Message:        nn.Message,
		RecipientID:    nn.RecipientID,
		RecipientPhone: nn.RecipientPhone,
		Channel:        nn.Channel,
		Status:         StatusPending,
		ScheduledAt:    nn.ScheduledAt,
	}
	if nn.TemplateID != "" {
		tpl, err := svc.repo.GetTemplateByID(nn.TemplateID)
		if err != nil {
			return Notification{}, err
		}
		ctx, err := svc.renderContext(nn)
		if err != nil {
			return Notification{}, err
		}
		n.Message = Render(tpl.MessageTemplate, ctx)
		if n.Channel == "" {
			n.Channel = tpl.Channel
		}
	}
	return svc.repo.CreateNotification(n)
}

func (svc *Service) QueryAll() ([]Notification, error) {
	return svc.repo.QueryAllNotifications()
}

func (svc *Service) GetByID(id string) (Notification, error) {
	return svc.repo.GetNotificationByID(id)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteNotification(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Notification, error) {
	notifs, err := svc.repo.QueryAllNotifications()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		notifs = keep(notifs, func(n Notification) bool { return n.Status == filter.Status })
	}
	if filter.Type != "" {
		notifs = keep(notifs, func(n Notification) bool { return n.Type == filter.Type })
	}
	if filter.Channel != "" {
		notifs = keep(notifs, func(n Notification) bool { return n.Channel == filter.Channel })
	}
	return core.Search(notifs, SearchFields, filter.Search), nil
}

// Send delivers a notification through the gateway. Delivery failure marks the
// record failed; the error is reflected in the record, not returned.
func (svc *Service) Send(id string) (Notification, error) {
	n, err := svc.repo.GetNotificationByID(id)
	if err != nil {
		return Notification{}, err
	}

	upd := Notification{ID: n.ID}
	status := StatusSent
	if err = svc.deliver(n); err != nil {
		svc.logger.Error("notification delivery failed", "id", n.ID, "err", err)
		status = StatusFailed
	} else {
		upd.SentAt.SetValid(time.Now().UTC())
	}
	return svc.repo.UpdateNotification(upd, status)
}

func (svc *Service) deliver(n Notification) error {
	to, err := svc.recipientAddress(n)
	if err != nil {
		return err
	}
	return svc.gateway.Deliver(&core.EmailMessage{
		To:      []mail.Address{to},
		Subject: n.Title,
		BodyStr: n.Message,
	})
}

func (svc *Service) recipientAddress(n Notification) (mail.Address, error) {
	if n.RecipientID.Valid {
		res, err := svc.residents.GetResidentByID(n.RecipientID.String)
		if err != nil {
			return mail.Address{}, err
		}
		if res.Email.Valid {
			return mail.Address{Name: res.Name, Address: res.Email.String}, nil
		}
	}
	if n.RecipientPhone.Valid {
		return mail.Address{Address: n.RecipientPhone.String + "@" + smsGatewayDomain}, nil
	}
	return mail.Address{}, errNoRecipient
}

const smsGatewayDomain = "sms.hostela.local"

var errNoRecipient = core.NewValidationError(errors.New("notification has no reachable recipient"))

func (svc *Service) renderContext(nn NewNotification) (RenderContext, error) {
	ctx := RenderContext{Message: nn.Message}
	if !nn.RecipientID.Valid {
		return ctx, nil
	}

	res, err := svc.residents.GetResidentByID(nn.RecipientID.String)
	if err != nil {
		return RenderContext{}, err
	}
	ctx.Name = res.Name

	if f, ok := svc.latestFee(res.ID); ok {
		ctx.Amount = f.Amount
		ctx.Month = f.Month
		ctx.DueDate = f.DueDate
		if f.ReceiptNumber.Valid {
			ctx.ReceiptNumber = f.ReceiptNumber.String
		}
		ctx.Days = int(time.Until(f.DueDate).Hours() / 24)
	}
	return ctx, nil
}

// latestFee returns the resident's most recently created unsettled fee, falling
// back to their last fee of any status.
func (svc *Service) latestFee(residentID string) (fee.FeeTransaction, bool) {
	fees, err := svc.fees.QueryAllFees()
	if err != nil {
		return fee.FeeTransaction{}, false
	}

	var last fee.FeeTransaction
	var found, foundOpen bool
	for _, f := range fees {
		if f.ResidentID != residentID {
			continue
		}
		open := f.Status == fee.StatusPending || f.Status == fee.StatusOverdue
		if open || !foundOpen {
			last = f
			found = true
			foundOpen = foundOpen || open
		}
	}
	return last, found
}

func (svc *Service) CreateTemplate(nt NewTemplate) (Template, error) {
	tpl := Template{
		Name:            nt.Name,
		Type:            nt.Type,
		MessageTemplate: nt.MessageTemplate,
		Channel:         nt.Channel,
		IsActive:        true,
	}
	if nt.IsActive != nil {
		tpl.IsActive = *nt.IsActive
	}
	return svc.repo.CreateTemplate(tpl)
}

func (svc *Service) QueryAllTemplates() ([]Template, error) {
	return svc.repo.QueryAllTemplates()
}

func (svc *Service) GetTemplateByID(id string) (Template, error) {
	return svc.repo.GetTemplateByID(id)
}

func (svc *Service) UpdateTemplate(id string, ut UpdateTemplate) (Template, error) {
	tpl := Template{
		ID:              id,
		Name:            ut.Name,
		MessageTemplate: ut.MessageTemplate,
	}
	return svc.repo.UpdateTemplate(tpl, ut.Type, ut.Channel, ut.IsActive)
}

func (svc *Service) DeleteTemplate(id string) error {
	return svc.repo.DeleteTemplate(id)
}

func keep(notifs []Notification, pred func(Notification) bool) []Notification {
	out := notifs[:0:0]
	for _, n := range notifs {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}
