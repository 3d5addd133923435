package notification

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/hostela/core"
)

// Types
const (
	TypeFeeReminder         = "fee_reminder"
	TypePaymentConfirmation = "payment_confirmation"
	TypeAnnouncement        = "announcement"
	TypeAlert               = "alert"
)

// Channels
const (
	ChannelSMS      = "sms"
	ChannelWhatsapp = "whatsapp"
	ChannelBoth     = "both"
)

// Statuses
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Search fields per collection.
var (
	SearchFields         = []string{"title", "message", "recipientId"}
	TemplateSearchFields = []string{"name", "type", "messageTemplate"}
)

type Notification struct {
	ID             string      `json:"id"`
	Type           string      `json:"type"`
	Title          string      `json:"title"`
	Message        string      `json:"message"`
	RecipientID    null.String `json:"recipientId,omitempty"`
	RecipientPhone null.String `json:"recipientPhone,omitempty"`
	Channel        string      `json:"channel"`
	Status         string      `json:"status"`
	ScheduledAt    null.Time   `json:"scheduledAt,omitempty"`
	SentAt         null.Time   `json:"sentAt,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type NewNotification struct {
	Type           string      `json:"type" validate:"required,oneof=fee_reminder payment_confirmation announcement alert"`
	Title          string      `json:"title" validate:"required"`
	Message        string      `json:"message" validate:"required_without=TemplateID"`
	TemplateID     string      `json:"templateId"`
	RecipientID    null.String `json:"recipientId"`
	RecipientPhone null.String `json:"recipientPhone"`
	Channel        string      `json:"channel" validate:"required,oneof=sms whatsapp both"`
	ScheduledAt    null.Time   `json:"scheduledAt"`
}

func (nn *NewNotification) Validate() error {
	nn.Type = core.CleanString(nn.Type, true)
	nn.Title = core.CleanString(nn.Title)
	nn.Message = core.CleanString(nn.Message)
	nn.TemplateID = core.CleanString(nn.TemplateID)
	nn.Channel = core.CleanString(nn.Channel, true)
	return core.Validate.Struct(nn)
}

type Template struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	MessageTemplate string    `json:"messageTemplate"`
	Channel         string    `json:"channel"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type NewTemplate struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type" validate:"required,oneof=fee_reminder payment_confirmation announcement alert"`
	MessageTemplate string `json:"messageTemplate" validate:"required"`
	Channel         string `json:"channel" validate:"required,oneof=sms whatsapp both"`
	IsActive        *bool  `json:"isActive"`
}

func (nt *NewTemplate) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Type = core.CleanString(nt.Type, true)
	nt.Channel = core.CleanString(nt.Channel, true)
	return core.Validate.Struct(nt)
}

// UpdateTemplate applies partially; zero values leave the stored field unchanged.
type UpdateTemplate struct {
	Name            string `json:"name"`
	Type            string `json:"type" validate:"omitempty,oneof=fee_reminder payment_confirmation announcement alert"`
	MessageTemplate string `json:"messageTemplate"`
	Channel         string `json:"channel" validate:"omitempty,oneof=sms whatsapp both"`
	IsActive        *bool  `json:"isActive"`
}

func (ut *UpdateTemplate) Validate() error {
	ut.Name = core.CleanString(ut.Name)
	ut.Type = core.CleanString(ut.Type, true)
	ut.Channel = core.CleanString(ut.Channel, true)
	return core.Validate.Struct(ut)
}

type QueryFilter struct {
	Search  string `query:"search"`
	Status  string `query:"status"`
	Type    string `query:"type"`
	Channel string `query:"channel"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true)
	qf.Type = core.CleanString(qf.Type, true)
	qf.Channel = core.CleanString(qf.Channel, true)
}
