// Package notify sends order confirmation mail. Delivery is best-effort:
// callers report the outcome as a flag and never fail the order on it.
package notify

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
)

type Mailer interface {
	SendOrderConfirmation(order *models.Order) error
}

// SMTPMailer talks plain SMTP with AUTH, configured from SMTP_* env vars.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPMailerFromEnv returns nil when SMTP_HOST is unset, which disables
// confirmation mail without any special-casing in the callers.
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func (m *SMTPMailer) SendOrderConfirmation(order *models.Order) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.From)
	fmt.Fprintf(&body, "To: %s\r\n", order.AccountEmail)
	fmt.Fprintf(&body, "Subject: Order %s confirmed\r\n\r\n", order.OrderRef)
	fmt.Fprintf(&body, "Hi %s,\r\n\r\nYour order %s has been placed.\r\n\r\n", order.AccountName, order.OrderRef)
	for _, item := range order.Items {
		fmt.Fprintf(&body, "- %s (%s / %s) x%d @ %.2f\r\n",
			item.ProductName, item.Size, item.Fabric, item.Quantity, item.Price)
	}
	fmt.Fprintf(&body, "\r\nTotal: %.2f (%s)\r\n", order.PaymentAmount, order.PaymentMethod)

	var a smtp.Auth
	if m.Username != "" {
		a = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, a, m.From, []string{order.AccountEmail}, []byte(body.String()))
}
