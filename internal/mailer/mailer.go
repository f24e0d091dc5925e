// Package mailer implements the volunteer-application mail relay: a small
// HTTP server that renders on-disk templates and sends them over SMTP, plus
// the client the API uses to reach it.
package mailer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/tulipkids/foundation-api/internal/config"
)

const (
	htmlTemplateName = "volunteer-application.html"
	textTemplateName = "volunteer-application.txt"

	defaultHTMLTemplate = "<h2>New Volunteer Application</h2>" +
		"<p><strong>Name:</strong> {{firstName}} {{lastName}}</p>" +
		"<p><strong>Email:</strong> {{email}}</p>" +
		"<p><strong>Phone:</strong> {{phone}}</p>" +
		"<h3>Why they want to join:</h3><p>{{reason}}</p>"

	defaultTextTemplate = "NEW VOLUNTEER APPLICATION\n\n" +
		"Name: {{firstName}} {{lastName}}\n" +
		"Email: {{email}}\n" +
		"Phone: {{phone}}\n\n" +
		"Why they want to join:\n{{reason}}"
)

// ApplicationMail is the payload accepted by the relay.
type ApplicationMail struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Reason    string `json:"reason"`
}

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	conf   *config.MailerConfig
	sender Sender
}

func New(conf *config.MailerConfig) *Mailer {
	return &Mailer{
		conf:   conf,
		sender: gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.User, conf.Password),
	}
}

// NewWithSender is used by tests to swap out the SMTP dialer.
func NewWithSender(conf *config.MailerConfig, sender Sender) *Mailer {
	return &Mailer{
		conf:   conf,
		sender: sender,
	}
}

// Send renders the volunteer-application templates and delivers the mail
// to the configured staff address.
func (m *Mailer) Send(mail ApplicationMail) error {
	htmlTemplate, textTemplate, err := m.loadTemplates()
	if err != nil {
		return fmt.Errorf("m.loadTemplates -> %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.conf.From)
	msg.SetHeader("To", m.conf.To)
	msg.SetHeader("Subject", "New Volunteer Application - Tulip Kids Foundation")
	msg.SetBody("text/plain", RenderText(textTemplate, mail))
	msg.AddAlternative("text/html", RenderHTML(htmlTemplate, mail))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("m.sender.DialAndSend -> %w", err)
	}

	return nil
}

// loadTemplates reads the on-disk templates, writing the built-in defaults
// on first run so they can be customized later.
func (m *Mailer) loadTemplates() (html, text string, err error) {
	dir := m.conf.TemplatesDir
	if dir == "" {
		dir = "email-templates"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	html, err = loadOrCreate(filepath.Join(dir, htmlTemplateName), defaultHTMLTemplate)
	if err != nil {
		return "", "", err
	}

	text, err = loadOrCreate(filepath.Join(dir, textTemplateName), defaultTextTemplate)
	if err != nil {
		return "", "", err
	}

	return html, text, nil
}

func loadOrCreate(path, fallback string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("os.ReadFile -> %w", err)
	}

	if err := os.WriteFile(path, []byte(fallback), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile -> %w", err)
	}

	return fallback, nil
}

// RenderText substitutes the {{field}} placeholders for the plain-text body.
func RenderText(template string, mail ApplicationMail) string {
	return replacer(mail, mail.Reason).Replace(template)
}

// RenderHTML substitutes the placeholders for the HTML body, turning
// newlines in the free-form reason into <br> tags.
func RenderHTML(template string, mail ApplicationMail) string {
	reason := strings.ReplaceAll(mail.Reason, "\n", "<br>")

	return replacer(mail, reason).Replace(template)
}

func replacer(mail ApplicationMail, reason string) *strings.Replacer {
	phone := mail.Phone
	if phone == "" {
		phone = "Not provided"
	}

	return strings.NewReplacer(
		"{{firstName}}", mail.FirstName,
		"{{lastName}}", mail.LastName,
		"{{email}}", mail.Email,
		"{{phone}}", phone,
		"{{reason}}", reason,
	)
}
