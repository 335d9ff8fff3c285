package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pogojump/pogojump-api/pkg/mailer/templates"
)

type captureSender struct {
	to, subject, text, html string
	calls                   int
}

func (s *captureSender) Send(_ context.Context, to, subject, text, html string) error {
	s.calls++
	s.to, s.subject, s.text, s.html = to, subject, text, html
	return nil
}

func TestDeliver_WelcomeTemplate(t *testing.T) {
	data := templates.NewEmailData("PogoJump", "https://shop.test", templates.WithRecipient("Alice", "a@x.com"))
	s := &captureSender{}

	err := Deliver(context.Background(), s, EmailJob{To: "a@x.com", Template: templates.Welcome, Data: templates.ToMap(data)})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", s.to)
	assert.Equal(t, "Welcome to PogoJump, Alice!", s.subject)
	assert.Contains(t, s.text, "https://shop.test")
	assert.Contains(t, s.html, "<strong>a@x.com</strong>")
}

func TestDeliver_OrderTemplateFormatsNumbers(t *testing.T) {
	data := templates.NewEmailData("PogoJump", "https://shop.test",
		templates.WithRecipient("Bob", "b@x.com"),
		templates.WithOrder(1712345678901, 178, 2, "pending"),
		templates.WithTime(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)),
	)
	s := &captureSender{}

	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "b@x.com", Template: templates.OrderPlaced, Data: templates.ToMap(data)}))
	assert.Equal(t, "PogoJump order #1712345678901 received", s.subject)
	assert.Contains(t, s.text, "Total: $178.00")
	assert.Contains(t, s.text, "Items: 2")
	assert.Contains(t, s.text, "01 March 2026, 09:30 UTC")
}

func TestDeliver_BadJobs(t *testing.T) {
	s := &captureSender{}
	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{Template: templates.Welcome}), ErrBadJob)
	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{To: "a@x.com", Template: "nope"}), ErrBadJob)
	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{To: "a@x.com"}), ErrBadJob)
	assert.Zero(t, s.calls)

	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "a@x.com", Subject: "hi", Text: "plain"}))
	assert.Equal(t, 1, s.calls)
}
