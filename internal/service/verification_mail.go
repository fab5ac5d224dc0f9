package service

import (
	"bitwise74/chores-api/internal/model"
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends verification links through an SMTP server
type SMTPMailer struct {
	Host     string
	Port     int
	From     string
	Password string
	// Public URL of the frontend, e.g. https://chores.example.com
	BaseURL string
}

func VerificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/verify?token=%s", baseURL, url.QueryEscape(token))
}

func (m *SMTPMailer) SendVerificationMail(_ context.Context, t *model.VerificationToken) error {
	if t.Identifier == m.From {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", t.Identifier)
	msg.SetHeader("Subject", "Verify your email to start tracking chores")
	msg.SetBody("text/html", fmt.Sprintf(
		"Click <a href='%s'>here</a> to verify your account.\n\nThis link will expire at %s",
		VerificationLink(m.BaseURL, t.Token), t.Expires.UTC().Format("2006-01-02 15:04 MST"),
	))

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Password)

	return d.DialAndSend(msg)
}

// LogMailer writes verification links to the log instead of sending them.
// Used when mail.enabled is false.
type LogMailer struct {
	BaseURL string
}

func (m *LogMailer) SendVerificationMail(_ context.Context, t *model.VerificationToken) error {
	zap.L().Info("Verification mail not sent, mail is disabled",
		zap.String("to", t.Identifier),
		zap.String("link", VerificationLink(m.BaseURL, t.Token)),
	)

	return nil
}
