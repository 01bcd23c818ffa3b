package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// GomailSender envía correos vía SMTP usando gomail.
type GomailSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewGomailSender(host string, port int, username, password, from, fromName string) (*GomailSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("smtp from is required")
	}
	if port == 0 {
		port = 587
	}
	return &GomailSender{
		dialer:   gomail.NewDialer(host, port, username, password),
		from:     from,
		fromName: fromName,
	}, nil
}

func (s *GomailSender) SendVerificationOTP(_ context.Context, toEmail string, code string, expiresAt time.Time) error {
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("to email is required")
	}

	body := fmt.Sprintf(
		"Your OTP code is: %s\nThis code expires at %s UTC.\n",
		code,
		expiresAt.UTC().Format(time.RFC3339),
	)

	msg := gomail.NewMessage()
	if strings.TrimSpace(s.fromName) != "" {
		msg.SetHeader("From", msg.FormatAddress(s.from, s.fromName))
	} else {
		msg.SetHeader("From", s.from)
	}
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your OTP Code")
	msg.SetBody("text/plain", body)

	return s.dialer.DialAndSend(msg)
}
