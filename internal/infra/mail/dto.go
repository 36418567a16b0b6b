package mail

import "github.com/sirupsen/logrus"

type ContactEmailData struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Service   string
	Message   string
	AdminURL  string
	CreatedAt string
}

type WelcomeEmailData struct {
	Name           string
	SiteURL        string
	UnsubscribeURL string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
	SiteURL  string
	APIURL   string
	Logger   logrus.FieldLogger
}
