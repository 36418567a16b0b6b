package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/entity"
	"github.com/xavierca1/agency-site/internal/infra/metrics"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func NewEmailSender(host string, port int, user, password, from, notifyTo, siteURL, apiURL string, logger logrus.FieldLogger) *EmailSender {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		NotifyTo: notifyTo,
		SiteURL:  strings.TrimRight(siteURL, "/"),
		APIURL:   strings.TrimRight(apiURL, "/"),
		Logger:   logger.WithField("component", "mail"),
	}
}

// Send monta e envia o email de uma notificação. Sem MAIL_HOST só loga.
func (s *EmailSender) Send(ctx context.Context, n entity.Notification) error {
	to, subject, tmpl, data, err := s.compose(n)
	if err != nil {
		return err
	}

	log := s.Logger.WithFields(logrus.Fields{"kind": n.Kind, "ref_id": n.RefID})
	if s.Host == "" || to == "" {
		log.Info("✉️ SMTP não configurado, email ignorado")
		metrics.RecordNotification(n.Kind, "skipped")
		return nil
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	if n.Kind == entity.NotificationContact {
		m.SetHeader("Reply-To", n.Email)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		metrics.RecordNotification(n.Kind, "failed")
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	metrics.RecordNotification(n.Kind, "sent")
	log.Info("✉️ email enviado")
	return nil
}

func (s *EmailSender) compose(n entity.Notification) (to, subject, tmpl string, data any, err error) {
	switch n.Kind {
	case entity.NotificationContact:
		adminURL := ""
		if s.SiteURL != "" {
			adminURL = s.SiteURL + "/admin"
		}
		return s.NotifyTo,
			fmt.Sprintf("New contact request from %s", n.Name),
			"contact.html",
			ContactEmailData{
				Name:      n.Name,
				Email:     n.Email,
				Phone:     n.Phone,
				Company:   n.Company,
				Service:   n.Service,
				Message:   n.Message,
				AdminURL:  adminURL,
				CreatedAt: n.CreatedAt.Format(time.RFC1123),
			}, nil

	case entity.NotificationNewsletter:
		return n.Email,
			"Welcome to our newsletter",
			"welcome.html",
			WelcomeEmailData{
				Name:           n.Name,
				SiteURL:        s.SiteURL,
				UnsubscribeURL: s.unsubscribeURL(n.Email),
			}, nil
	}
	return "", "", "", nil, fmt.Errorf("tipo de notificação desconhecido: %q", n.Kind)
}

func (s *EmailSender) unsubscribeURL(email string) string {
	q := url.Values{}
	q.Set("action", "unsubscribe")
	q.Set("email", email)
	return s.APIURL + "/api/newsletter?" + q.Encode()
}

// Mailer é o que o DirectNotifier precisa para entregar uma notificação.
type Mailer interface {
	Send(ctx context.Context, n entity.Notification) error
}

// DirectNotifier envia o email numa goroutine, sem fila. É o caminho usado
// quando RABBITMQ_URL não está configurada. Wait segura o shutdown até os
// envios em andamento terminarem.
type DirectNotifier struct {
	Mailer Mailer
	Logger logrus.FieldLogger
	wg     sync.WaitGroup
}

func NewDirectNotifier(sender *EmailSender) *DirectNotifier {
	return &DirectNotifier{Mailer: sender, Logger: sender.Logger}
}

func (d *DirectNotifier) Notify(_ context.Context, n entity.Notification) error {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.Mailer.Send(context.Background(), n); err != nil {
			d.Logger.WithError(err).WithField("kind", n.Kind).Error("❌ falha ao enviar email")
		}
	}()
	return nil
}

// Wait bloqueia até todos os envios terminarem ou o ctx expirar.
func (d *DirectNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
