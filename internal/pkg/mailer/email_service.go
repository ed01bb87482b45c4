// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInterviewSummary(toEmail, sessionId, summary string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendInterviewSummary(toEmail, sessionId, summary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Catalog Interview Completed")

	summaryHTML := strings.ReplaceAll(html.EscapeString(summary), "\n", "<br>")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A catalog interview just finished</h2>
			<p>Session <strong>%s</strong> has been completed. Here's what was learned:</p>
			<p>%s</p>
			<p>The new rooms, furniture types, and product configurations are already in the catalog.</p>
		</div>
	`, html.EscapeString(sessionId), summaryHTML)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send summary for session %s: %v\n", sessionId, err)
		return err
	}

	fmt.Printf("[MAILER] Interview summary sent to %s\n", toEmail)
	return nil
}
