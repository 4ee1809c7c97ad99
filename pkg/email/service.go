package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending. Without a SendGrid key it logs the
// message instead, which is the development default.
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
func NewService(fromEmail, fromName, sendGridKey string) *Service {
	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridKey,
		useSendGrid: sendGridKey != "",
	}
}

// ExportReady notifies a user that their lead export finished.
func (s *Service) ExportReady(toEmail, filename string, leadCount int) error {
	subject := "Your Lumina export is ready"
	plain := fmt.Sprintf(
		"Your export %s containing %d leads is ready to download from the app.",
		filename, leadCount,
	)
	html := fmt.Sprintf(
		"<p>Your export <strong>%s</strong> containing %d leads is ready to download from the app.</p>",
		filename, leadCount,
	)

	if !s.useSendGrid {
		log.Printf("📧 [EMAIL] Export ready email to: %s", toEmail)
		log.Printf("   Subject: %s", subject)
		log.Printf("   %s", plain)
		log.Printf("   ⚠️  Email NOT sent (development mode)")
		return nil
	}

	return s.sendViaSendGrid(toEmail, subject, html, plain)
}

func (s *Service) sendViaSendGrid(toEmail, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("📧 Export ready email sent to %s", toEmail)
	return nil
}
