package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailer_DisabledWithoutHost(t *testing.T) {
	m := NewMailer(MailConfig{SMTPPort: "587"})

	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.SendMail("a@x.com", "hi", "body"), ErrMailNotConfigured)
}

func TestMailer_RejectsBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPEmail: "bot@example.com", SMTPPort: "abc"})

	assert.True(t, m.Enabled())
	assert.Error(t, m.SendMail("a@x.com", "hi", "body"))
}

func TestContactMessageBody_EscapesInput(t *testing.T) {
	body := ContactMessageBody("<b>x</b>", "a@x.com", "subj", "hello & bye")

	assert.Contains(t, body, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, body, "hello &amp; bye")
}
