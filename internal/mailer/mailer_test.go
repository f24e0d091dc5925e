package mailer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/tulipkids/foundation-api/internal/config"
)

type fakeSender struct {
	err      error
	messages []*gomail.Message
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.messages = append(f.messages, m...)

	return f.err
}

func testConfig(t *testing.T) *config.MailerConfig {
	t.Helper()

	return &config.MailerConfig{
		From:         "noreply@tulipkids.org",
		To:           "volunteers@tulipkids.org",
		TemplatesDir: filepath.Join(t.TempDir(), "email-templates"),
	}
}

func sampleMail() ApplicationMail {
	return ApplicationMail{
		FirstName: "Lena",
		LastName:  "Kim",
		Email:     "lena@example.com",
		Phone:     "4085551234",
		Reason:    "I want to help\nwith the race",
	}
}

func TestSend(t *testing.T) {
	conf := testConfig(t)
	sender := &fakeSender{}
	m := NewWithSender(conf, sender)

	err := m.Send(sampleMail())
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)

	var buf bytes.Buffer
	_, err = sender.messages[0].WriteTo(&buf)
	require.NoError(t, err)
	body := buf.String()

	assert.Contains(t, body, "noreply@tulipkids.org")
	assert.Contains(t, body, "volunteers@tulipkids.org")
	assert.Contains(t, body, "New Volunteer Application - Tulip Kids Foundation")
	assert.Contains(t, body, "Lena Kim")
}

func TestSend_CreatesTemplatesOnFirstRun(t *testing.T) {
	conf := testConfig(t)
	m := NewWithSender(conf, &fakeSender{})

	require.NoError(t, m.Send(sampleMail()))

	for _, name := range []string{htmlTemplateName, textTemplateName} {
		_, err := os.Stat(filepath.Join(conf.TemplatesDir, name))
		assert.NoError(t, err)
	}
}

func TestSend_UsesCustomizedTemplate(t *testing.T) {
	conf := testConfig(t)
	require.NoError(t, os.MkdirAll(conf.TemplatesDir, 0o755))
	custom := "CUSTOM TEMPLATE for {{firstName}}"
	require.NoError(t, os.WriteFile(filepath.Join(conf.TemplatesDir, textTemplateName), []byte(custom), 0o644))

	sender := &fakeSender{}
	m := NewWithSender(conf, sender)
	require.NoError(t, m.Send(sampleMail()))

	var buf bytes.Buffer
	_, err := sender.messages[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "CUSTOM TEMPLATE for Lena")
}

func TestRenderText(t *testing.T) {
	got := RenderText(defaultTextTemplate, sampleMail())

	assert.Contains(t, got, "Name: Lena Kim")
	assert.Contains(t, got, "Email: lena@example.com")
	assert.Contains(t, got, "Phone: 4085551234")
	// Newlines stay as-is in the text body.
	assert.Contains(t, got, "I want to help\nwith the race")
}

func TestRenderText_EmptyPhone(t *testing.T) {
	mail := sampleMail()
	mail.Phone = ""

	got := RenderText(defaultTextTemplate, mail)

	assert.Contains(t, got, "Phone: Not provided")
}

func TestRenderHTML(t *testing.T) {
	got := RenderHTML(defaultHTMLTemplate, sampleMail())

	assert.Contains(t, got, "Lena Kim")
	assert.Contains(t, got, "I want to help<br>with the race")
}
