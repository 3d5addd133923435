// Package settings holds the single system-wide configuration record edited
// from the back office.
package settings

import (
	"time"

	"github.com/trezcool/hostela/core"
)

type SystemSettings struct {
	HostelName            string    `json:"hostelName"`
	HostelNameUrdu        string    `json:"hostelNameUrdu"`
	Address               string    `json:"address"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	Currency              string    `json:"currency"`
	DateFormat            string    `json:"dateFormat"`
	Language              string    `json:"language"`
	FeeGenerationDay      int       `json:"feeGenerationDay"`
	LateFeePercentage     float64   `json:"lateFeePercentage"`
	SecurityDepositMonths int       `json:"securityDepositMonths"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// UpdateSettings applies partially; zero values leave the stored field unchanged.
type UpdateSettings struct {
	HostelName            string   `json:"hostelName"`
	HostelNameUrdu        string   `json:"hostelNameUrdu"`
	Address               string   `json:"address"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email" validate:"omitempty,email"`
	Currency              string   `json:"currency"`
	DateFormat            string   `json:"dateFormat"`
	Language              string   `json:"language" validate:"omitempty,oneof=en ur"`
	FeeGenerationDay      *int     `json:"feeGenerationDay" validate:"omitempty,min=1,max=28"`
	LateFeePercentage     *float64 `json:"lateFeePercentage" validate:"omitempty,min=0,max=100"`
	SecurityDepositMonths *int     `json:"securityDepositMonths" validate:"omitempty,min=0,max=12"`
}

func (us *UpdateSettings) Validate() error {
	us.HostelName = core.CleanString(us.HostelName)
	us.HostelNameUrdu = core.CleanString(us.HostelNameUrdu)
	us.Address = core.CleanString(us.Address)
	us.Phone = core.CleanString(us.Phone)
	us.Email = core.CleanString(us.Email, true)
	us.Currency = core.CleanString(us.Currency, true)
	us.Language = core.CleanString(us.Language, true)
	return core.Validate.Struct(us)
}

type (
	Repository interface {
		GetSettings() (SystemSettings, error)
		SaveSettings(s SystemSettings) (SystemSettings, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get() (SystemSettings, error) {
	return svc.repo.GetSettings()
}

func (svc *Service) Update(us UpdateSettings) (SystemSettings, error) {
	s, err := svc.repo.GetSettings()
	if err != nil {
		return SystemSettings{}, err
	}

	if us.HostelName != "" {
		s.HostelName = us.HostelName
	}
	if us.HostelNameUrdu != "" {
		s.HostelNameUrdu = us.HostelNameUrdu
	}
	if us.Address != "" {
		s.Address = us.Address
	}
	if us.Phone != "" {
		s.Phone = us.Phone
	}
	if us.Email != "" {
		s.Email = us.Email
	}
	if us.Currency != "" {
		s.Currency = us.Currency
	}
	if us.DateFormat != "" {
		s.DateFormat = us.DateFormat
	}
	if us.Language != "" {
		s.Language = us.Language
	}
	if us.FeeGenerationDay != nil {
		s.FeeGenerationDay = *us.FeeGenerationDay
	}
	if us.LateFeePercentage != nil {
		s.LateFeePercentage = *us.LateFeePercentage
	}
	if us.SecurityDepositMonths != nil {
		s.SecurityDepositMonths = *us.SecurityDepositMonths
	}
	return svc.repo.SaveSettings(s)
}
