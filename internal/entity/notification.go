package entity

import "time"

const (
	NotificationContact    = "contact_submission"
	NotificationNewsletter = "newsletter_welcome"
)

// Notification é a mensagem que vai para a fila (ou direto para o SMTP).
type Notification struct {
	Kind      string    `json:"kind"`
	RefID     string    `json:"ref_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ContactNotification(s *Submission) Notification {
	return Notification{
		Kind:      NotificationContact,
		RefID:     s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Company:   s.Company,
		Service:   s.Service,
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	}
}

func NewsletterNotification(s *Subscriber) Notification {
	return Notification{
		Kind:      NotificationNewsletter,
		RefID:     s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CreatedAt: s.UpdatedAt,
	}
}
