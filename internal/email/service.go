package email

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/mediblues/directory-api/internal/config"
	"github.com/mediblues/directory-api/internal/model"
)

// Service emails booking notifications to the configured staff address.
// Delivery failures are logged and never surfaced to the caller.
type Service struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

func NewService(cfg config.SMTPConfig, logger zerolog.Logger) *Service {
	return &Service{cfg: cfg, logger: logger}
}

func (s *Service) NotifyAppointment(appointment *model.Appointment) {
	if !s.cfg.Enabled {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("New appointment request from %s", appointment.FullName))
	m.SetBody("text/plain", s.buildBody(appointment))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).Int64("appointment_id", appointment.ID).Msg("failed to send appointment notification")
		return
	}
	s.logger.Info().Int64("appointment_id", appointment.ID).Msg("appointment notification sent")
}

func (s *Service) buildBody(appointment *model.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", appointment.FullName)
	fmt.Fprintf(&b, "Mobile: %s\n", appointment.MobileNumber)
	if appointment.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", appointment.Email)
	}
	if appointment.Type == model.AppointmentTypePackage && appointment.PackageID != nil {
		fmt.Fprintf(&b, "Package ID: %d\n", *appointment.PackageID)
	}
	if appointment.PreferredDate != nil {
		fmt.Fprintf(&b, "Preferred date: %s\n", appointment.PreferredDate.Format("2006-01-02"))
	}
	if appointment.PreferredTime != "" {
		fmt.Fprintf(&b, "Preferred time: %s\n", appointment.PreferredTime)
	}
	if appointment.ReasonForVisit != "" {
		fmt.Fprintf(&b, "Reason: %s\n", appointment.ReasonForVisit)
	}
	if appointment.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", appointment.Message)
	}
	return b.String()
}
