package services

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail delivers a plain-text mail through the configured SMTP
// account. Callers treat failures as best-effort and only log them.
func SendEmail(to, subject, body string) error {
	from := os.Getenv("EMAIL_USER")
	if from == "" {
		return fmt.Errorf("EMAIL_USER is not set")
	}
	password := os.Getenv("EMAIL_PASS")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	msg := []byte(fmt.Sprintf(
		"From: Hostel System <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		from, to, subject, body,
	))

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
