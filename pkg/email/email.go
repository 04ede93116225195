// Package email composes the service's transactional emails and drives
// the SMTP transport that delivers them.
package email

import (
	"strings"
	"time"

	"go-email-backend/config"
)

// EmailService renders message bodies from request data and sends them
// through the configured transport. It holds no per-request state.
type EmailService struct {
	transport Transport
	company   config.CompanyInfo
}

// BookingEmailData holds the data for a booking confirmation email.
type BookingEmailData struct {
	Name        string
	Email       string
	Date        string
	Time        string
	ProjectType string
}

// ContactEmailData holds the data for contact form emails.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewEmailService(transport Transport) *EmailService {
	return &EmailService{
		transport: transport,
		company:   config.Company(),
	}
}

// formatDate renders an ISO calendar date (YYYY-MM-DD) in a long
// human-readable form. Anything that does not parse is passed through
// unchanged; this never fails.
func formatDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, January 02, 2006")
}

// SendBookingConfirmation sends a consultation confirmation to the
// requester.
func (s *EmailService) SendBookingConfirmation(data BookingEmailData) error {
	body, err := render(bookingTmpl, bookingVars{
		chrome: chrome{
			HeaderTitle:    s.company.Name,
			HeaderSubtitle: "Your Consultation is Confirmed",
			Company:        s.company,
		},
		Name:             data.Name,
		FormattedDate:    formatDate(data.Date),
		Time:             data.Time,
		ProjectType:      data.ProjectType,
		ProjectTypeLower: strings.ToLower(data.ProjectType),
	})
	if err != nil {
		return err
	}

	return s.transport.Send(&Message{
		FromName: s.company.Name,
		To:       data.Email,
		Subject:  "Your Architectural Consultation Booking Confirmation",
		HTML:     body,
	})
}

// SendContactNotification delivers two messages for a contact form
// submission: an internal notification to the studio, then an
// acknowledgment to the requester. Each goes out on its own connection.
// If the notification fails the acknowledgment is never attempted; if
// the acknowledgment fails the operation still fails even though the
// notification is already delivered - a sent email cannot be recalled.
func (s *EmailService) SendContactNotification(data ContactEmailData) error {
	notification, err := render(contactNotificationTmpl, contactNotificationVars{
		chrome: chrome{
			HeaderTitle: "New Website Contact",
			Company:     s.company,
		},
		Name:    data.Name,
		Email:   data.Email,
		Subject: data.Subject,
		Message: data.Message,
	})
	if err != nil {
		return err
	}

	if err := s.transport.Send(&Message{
		FromName: s.company.Name + " Website",
		To:       s.company.Email,
		Subject:  "New Contact Form Submission: " + data.Subject,
		HTML:     notification,
	}); err != nil {
		return err
	}

	acknowledgment, err := render(contactAckTmpl, contactAckVars{
		chrome: chrome{
			HeaderTitle: s.company.Name,
			Company:     s.company,
		},
		Name:    data.Name,
		Subject: data.Subject,
	})
	if err != nil {
		return err
	}

	return s.transport.Send(&Message{
		FromName: s.company.Name,
		To:       data.Email,
		Subject:  "Thank you for contacting " + s.company.Name,
		HTML:     acknowledgment,
	})
}

// SendTestEmail delivers a minimal message for verifying the transport
// configuration end to end.
func (s *EmailService) SendTestEmail(recipient string) error {
	body, err := render(testTmpl, testVars{
		chrome: chrome{
			HeaderTitle:    s.company.Name,
			HeaderSubtitle: "Email Service Test",
			Company:        s.company,
		},
	})
	if err != nil {
		return err
	}

	return s.transport.Send(&Message{
		FromName: s.company.Name,
		To:       recipient,
		Subject:  "DD Architecture Email Service Test",
		HTML:     body,
	})
}
