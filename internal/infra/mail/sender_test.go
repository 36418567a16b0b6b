package mail

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/agency-site/internal/entity"
)

func newTestSender(host string) (*EmailSender, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return NewEmailSender(host, 587, "", "", "site@agency.example", "team@agency.example", "https://agency.example/", "https://api.agency.example/", logger), hook
}

func TestEmailSender_Compose(t *testing.T) {
	s, _ := newTestSender("smtp.example")

	t.Run("Contato vai para a equipe", func(t *testing.T) {
		to, subject, tmpl, data, err := s.compose(entity.Notification{
			Kind:      entity.NotificationContact,
			Name:      "Ana",
			Email:     "ana@example.com",
			Message:   "Hi",
			CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "team@agency.example", to)
		assert.Contains(t, subject, "Ana")
		assert.Equal(t, "contact.html", tmpl)
		assert.Equal(t, "https://agency.example/admin", data.(ContactEmailData).AdminURL)
	})

	t.Run("Boas-vindas vai para o inscrito", func(t *testing.T) {
		to, _, tmpl, data, err := s.compose(entity.Notification{Kind: entity.NotificationNewsletter, Email: "bia@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "bia@example.com", to)
		assert.Equal(t, "welcome.html", tmpl)
		assert.Equal(t,
			"https://api.agency.example/api/newsletter?action=unsubscribe&email=bia%40example.com",
			data.(WelcomeEmailData).UnsubscribeURL)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		_, _, _, _, err := s.compose(entity.Notification{Kind: "sms"})
		assert.Error(t, err)
	})
}

func TestEmailSender_SkipsWithoutHost(t *testing.T) {
	s, hook := newTestSender("")

	err := s.Send(context.Background(), entity.Notification{Kind: entity.NotificationNewsletter, Email: "bia@example.com"})
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "SMTP não configurado")
}

func TestTemplatesRender(t *testing.T) {
	for _, name := range []string{"contact.html", "welcome.html"} {
		assert.NotNil(t, templates.Lookup(name), name)
	}
}

// slowMailer segura cada envio até release ser fechado.
type slowMailer struct {
	release chan struct{}
	sent    atomic.Int32
	fail    bool
}

func (m *slowMailer) Send(context.Context, entity.Notification) error {
	<-m.release
	m.sent.Add(1)
	if m.fail {
		return errors.New("smtp down")
	}
	return nil
}

func TestDirectNotifier_WaitDrainsInFlightMail(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := &slowMailer{release: make(chan struct{})}
	d := &DirectNotifier{Mailer: m, Logger: logger}

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Notify(context.Background(), entity.Notification{Kind: entity.NotificationContact}))
	}

	t.Run("Timeout com envios pendentes", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.Wait(ctx), context.DeadlineExceeded)
		assert.Equal(t, int32(0), m.sent.Load())
	})

	t.Run("Espera todos terminarem", func(t *testing.T) {
		close(m.release)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, d.Wait(ctx))
		assert.Equal(t, int32(3), m.sent.Load())
		assert.Empty(t, hook.AllEntries())
	})
}

func TestDirectNotifier_LogsSendErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := &slowMailer{release: make(chan struct{}), fail: true}
	close(m.release)
	d := &DirectNotifier{Mailer: m, Logger: logger}

	require.NoError(t, d.Notify(context.Background(), entity.Notification{Kind: entity.NotificationNewsletter}))
	require.NoError(t, d.Wait(context.Background()))

	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "falha ao enviar email")
}
