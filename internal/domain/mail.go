package domain

import "context"

// Request kinds the dispatcher understands.
const (
	KindBooking = "booking"
	KindContact = "contact"
)

// Required payload fields per kind, in the order they are checked. The
// first missing field is the one reported.
var (
	BookingRequiredFields = []string{"name", "email", "date", "time", "projectType"}
	ContactRequiredFields = []string{"name", "email", "subject", "message"}
)

// Result is the uniform envelope returned by every mail operation.
// Callers never see raw transport errors, only the message text.
// Code carries the HTTP status the delivery layer should respond with;
// it is not part of the wire format.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"-"`
}

// MailUsecase validates inbound requests and routes them to the matching
// email-composition operation.
type MailUsecase interface {
	// Dispatch checks the payload for the fields kind requires, composes
	// and sends the matching email(s), and reports the outcome. A payload
	// missing a required field triggers zero sends.
	Dispatch(ctx context.Context, kind string, payload map[string]any) Result

	// SendTest delivers a minimal test email to the given address.
	SendTest(ctx context.Context, email string) Result
}
