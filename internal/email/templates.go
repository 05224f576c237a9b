package email

import (
	"fmt"
	"strings"
	"time"
)

// BookingConfirmation builds the email sent when a booking is placed.
func BookingConfirmation(to, spaceName string, start, end time.Time) Message {
	s := start.UTC()
	e := end.UTC()

	var b strings.Builder
	fmt.Fprintf(&b, "Your booking at %s has been received.\n\n", spaceName)
	fmt.Fprintf(&b, "Date: %s\n", s.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Time: %s - %s (UTC)\n\n", s.Format("15:04"), e.Format("15:04"))
	b.WriteString("We will notify you once it is confirmed.\n")

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Booking received: %s", spaceName),
		Body:    b.String(),
	}
}

// BookingCancellation builds the email sent when a booking is cancelled.
func BookingCancellation(to, spaceName string, start, end time.Time) Message {
	s := start.UTC()
	e := end.UTC()

	var b strings.Builder
	fmt.Fprintf(&b, "Your booking at %s has been cancelled.\n\n", spaceName)
	fmt.Fprintf(&b, "Date: %s\n", s.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Time: %s - %s (UTC)\n", s.Format("15:04"), e.Format("15:04"))

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Booking cancelled: %s", spaceName),
		Body:    b.String(),
	}
}

// PaymentReceipt builds the email sent when a payment completes.
func PaymentReceipt(to string, amount float64, paidAt time.Time) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "We received your payment of %.2f EUR on %s.\n\n", amount, paidAt.UTC().Format("2 January 2006"))
	b.WriteString("Thank you for working with us.\n")

	return Message{
		To:      to,
		Subject: "Payment received",
		Body:    b.String(),
	}
}

// ContactNotification builds the email forwarded to the operator inbox
// when a visitor submits the contact form.
func ContactNotification(inbox, name, fromEmail, subject, message string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission from %s <%s>:\n\n", name, fromEmail)
	b.WriteString(message)
	b.WriteString("\n")

	return Message{
		To:      inbox,
		Subject: fmt.Sprintf("Contact form: %s", subject),
		Body:    b.String(),
	}
}
