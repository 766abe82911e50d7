package notification

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"
)

// Mailer sends fire-and-forget booking notifications. Implementations
// must never let a delivery failure reach the booking flow: log and
// swallow.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, customerName string, date time.Time, timeSlot, address, serviceType string)
	SendBookingCancellation(ctx context.Context, to, customerName string, date time.Time, address string)
}

// ConsoleMailer logs instead of sending; used in dev and tests.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer { return &ConsoleMailer{} }

func (m *ConsoleMailer) SendBookingConfirmation(_ context.Context, to, customerName string, date time.Time, timeSlot, address, serviceType string) {
	log.Printf("mail_stub kind=confirmation to=%s customer=%q date=%s slot=%q address=%q service=%q",
		to, customerName, date.Format("2006-01-02"), timeSlot, address, serviceType)
}

func (m *ConsoleMailer) SendBookingCancellation(_ context.Context, to, customerName string, date time.Time, address string) {
	log.Printf("mail_stub kind=cancellation to=%s customer=%q date=%s address=%q",
		to, customerName, date.Format("2006-01-02"), address)
}

// SMTPMailer delivers over plain SMTP with auth.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(addr, user, password, from string) *SMTPMailer {
	host := addr
	if i := strings.IndexByte(addr, ':'); i >= 0 {
		host = addr[:i]
	}
	return &SMTPMailer{
		addr: addr,
		auth: smtp.PlainAuth("", user, password, host),
		from: from,
	}
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, to, customerName string, date time.Time, timeSlot, address, serviceType string) {
	subject := "Cleaning Service Booking Confirmation"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour %s service has been booked.\n\nDate: %s\nTime: %s\nAddress: %s\n\nThe admin will review your booking and set the final price shortly.\n\nThe Rock Waste Management Team",
		customerName, strings.ReplaceAll(serviceType, "_", " "),
		date.Format("02 Jan 2006"), timeSlot, address,
	)
	m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) SendBookingCancellation(ctx context.Context, to, customerName string, date time.Time, address string) {
	subject := "Booking Cancellation Confirmation"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking for %s on %s has been cancelled.\n\nThe Rock Waste Management Team",
		customerName, address, date.Format("02 Jan 2006"),
	)
	m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) send(_ context.Context, to, subject, body string) {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		// never block the booking flow on mail failures
		log.Printf("mail_error to=%s subject=%q error=%v", to, subject, err)
	}
}
