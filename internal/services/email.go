package services

import (
	"fmt"
	"html"
	"net/smtp"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/models"
)

// EmailService notifies the site owner about new comments. Notifications
// are best effort; callers fire them async and only log failures.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	ownerEmail   string
	appURL       string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.SMTPFromEmail,
		fromName:     cfg.SMTPFromName,
		ownerEmail:   cfg.OwnerEmail,
		appURL:       cfg.AppURL,
	}
}

// Enabled reports whether an owner address is configured.
func (s *EmailService) Enabled() bool {
	return s.ownerEmail != ""
}

// NotifyNewComment emails the owner about a freshly posted comment.
func (s *EmailService) NotifyNewComment(comment models.Comment) error {
	subject := fmt.Sprintf("New comment from %s", comment.Name)
	body := fmt.Sprintf(
		"<p><strong>%s</strong> wrote:</p><blockquote>%s</blockquote><p><a href=\"%s\">Open the comment board</a></p>",
		html.EscapeString(comment.Name),
		html.EscapeString(comment.Message),
		s.appURL,
	)
	return s.SendEmail(s.ownerEmail, subject, body)
}

// SendEmail sends an email using SMTP
func (s *EmailService) SendEmail(to, subject, body string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", from, to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)

	// Development mode without authentication
	if s.smtpUsername == "" && s.smtpPassword == "" {
		conn, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		if err := conn.Mail(s.fromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err := conn.Rcpt(to); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := conn.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		if _, err = w.Write(msg); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		if err = w.Close(); err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return conn.Quit()
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
