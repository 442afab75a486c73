package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"parkcompare/internal/infra/events"
	"parkcompare/internal/pkg/config"
	"parkcompare/internal/pkg/errs"
)

// Sender delivers booking confirmation emails over SMTP.
type Sender struct {
	cfg config.MailConfig
}

func NewSender(cfg config.MailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// SendBookingConfirmation renders and sends the confirmation for one
// booking event. The CC address, when configured, gives the back office a
// copy of every confirmation.
func (s *Sender) SendBookingConfirmation(event events.BookingConfirmed) error {
	recipients := append([]string{event.CustomerEmail}, s.cfg.CC...)

	msg := s.buildMessage(event)
	addr := s.cfg.Host + ":" + s.cfg.Port

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.Sender, recipients, msg); err != nil {
		return errs.Wrap(err, "failed to send confirmation email")
	}
	return nil
}

func (s *Sender) buildMessage(event events.BookingConfirmed) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.cfg.SenderName, s.cfg.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", event.CustomerEmail)
	if len(s.cfg.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(s.cfg.CC, ", "))
	}
	fmt.Fprintf(&b, "Subject: Booking Confirmation %s\r\n", event.Reference)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", event.CustomerName)
	fmt.Fprintf(&b, "Your airport parking is confirmed. Your booking reference is %s.\r\n\r\n", event.Reference)
	fmt.Fprintf(&b, "Parking: %s (%s)\r\n", event.ParkingName, event.Airport)
	fmt.Fprintf(&b, "Drop-off: %s\r\n", event.StartDate.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Pick-up: %s\r\n", event.EndDate.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Duration: %d day(s), %d vehicle(s)\r\n\r\n", event.DurationDays, event.VehicleCount)
	if event.DiscountAmount > 0 {
		fmt.Fprintf(&b, "Subtotal: £%.2f\r\n", event.OriginalTotal)
		fmt.Fprintf(&b, "Discount (%s): -£%.2f\r\n", event.PromoCode, event.DiscountAmount)
	}
	fmt.Fprintf(&b, "Total paid: £%.2f\r\n\r\n", event.FinalTotal)
	b.WriteString("Please keep this reference handy on the day of travel.\r\n\r\n")
	fmt.Fprintf(&b, "%s\r\n", s.cfg.SenderName)

	return []byte(b.String())
}
