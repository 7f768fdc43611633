package email

import (
	"fmt"
	"net/smtp"
)

// Sender sends plain text email over SMTP.
type Sender struct {
	Host     string
	Port     string
	From     string
	Password string

	// send is swapped in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSender(host, port, from, password string) *Sender {
	return &Sender{Host: host, Port: port, From: from, Password: password, send: smtp.SendMail}
}

// SendEmail sends a plain text email.
func (s *Sender) SendEmail(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	address := s.Host + ":" + s.Port

	err := s.send(address, auth, s.From, []string{to}, msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
