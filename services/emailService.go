package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/ChurchCMS/models"
)

type EmailService struct {
	client *resend.Client
	from   string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@church.example"
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// Send delivers a single transactional email.
func (s *EmailService) Send(to string, subject string, text string, html string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		Html:    html,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s (ID: %s)", to, sent.Id)
	return nil
}

// SendContactNotification emails the administrator about a new contact
// message. Callers log the error; the contact request has already been
// persisted and must not fail on delivery problems.
func (s *EmailService) SendContactNotification(m models.ContactMessage) error {
	adminEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_NOTIFY_EMAIL not set")
	}

	subject := fmt.Sprintf("New contact message: %s", m.Subject)
	text := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", m.Name, m.Email, m.Phone, m.Message)
	html := fmt.Sprintf(`
<h2>New contact message</h2>
<p><strong>From:</strong> %s &lt;%s&gt;</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`, m.Name, m.Email, m.Phone, m.Subject, m.Message)

	return s.Send(adminEmail, subject, text, html)
}

// SendPasswordResetEmail sends a password reset email with a 6-digit code
func (s *EmailService) SendPasswordResetEmail(toEmail string, code string, firstName string) error {
	if firstName == "" {
		firstName = "there"
	}

	subject := "Your password reset code"
	text := fmt.Sprintf("Hi %s,\n\nYour password reset code is: %s\n\nThis code will expire in 15 minutes. If you did not request a password reset, you can ignore this email.", firstName, code)
	html := fmt.Sprintf(`
<h2>Password Reset Request</h2>
<p>Hi %s,</p>
<p>Use the verification code below to reset your password:</p>
<p style="font-size:28px;font-weight:bold;letter-spacing:6px;font-family:monospace">%s</p>
<p><strong>This code will expire in 15 minutes.</strong></p>
<p>If you did not request a password reset, you can safely ignore this email.</p>`, firstName, code)

	return s.Send(toEmail, subject, text, html)
}
