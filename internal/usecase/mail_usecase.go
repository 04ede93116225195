package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go-email-backend/internal/domain"
	"go-email-backend/pkg/email"
	"go-email-backend/pkg/logger"

	"github.com/google/uuid"
)

type mailUsecase struct {
	emailService *email.EmailService
	submissions  domain.SubmissionRepository
	log          *slog.Logger
}

// NewMailUsecase creates the dispatcher that validates inbound requests
// and routes them to the matching email composition.
func NewMailUsecase(emailService *email.EmailService, submissions domain.SubmissionRepository) domain.MailUsecase {
	log := logger.Log
	if log == nil {
		log = slog.Default()
	}
	return &mailUsecase{
		emailService: emailService,
		submissions:  submissions,
		log:          log,
	}
}

// Dispatch checks required fields, composes and sends the matching
// email(s), and normalizes the outcome into the uniform envelope.
func (uc *mailUsecase) Dispatch(ctx context.Context, kind string, payload map[string]any) (res domain.Result) {
	// Single-level catch-and-report: anything unexpected during
	// composition or sending becomes a failure envelope. No retry.
	defer func() {
		if r := recover(); r != nil {
			res = domain.Result{
				Message: fmt.Sprintf("Error processing request: %v", r),
				Code:    http.StatusInternalServerError,
			}
		}
	}()

	switch kind {
	case domain.KindBooking:
		if field, ok := firstMissingField(payload, domain.BookingRequiredFields); !ok {
			return missingFieldResult(field)
		}
		return uc.sendBooking(ctx, payload)
	case domain.KindContact:
		if field, ok := firstMissingField(payload, domain.ContactRequiredFields); !ok {
			return missingFieldResult(field)
		}
		return uc.sendContact(ctx, payload)
	default:
		return domain.Result{
			Message: fmt.Sprintf("Unknown request type: %s", kind),
			Code:    http.StatusBadRequest,
		}
	}
}

func (uc *mailUsecase) SendTest(ctx context.Context, address string) domain.Result {
	if err := uc.emailService.SendTestEmail(address); err != nil {
		return domain.Result{
			Message: "Failed to send test email: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	}
	return domain.Result{
		Success: true,
		Message: fmt.Sprintf("Test email sent successfully to %s", address),
		Code:    http.StatusOK,
	}
}

func (uc *mailUsecase) sendBooking(ctx context.Context, payload map[string]any) domain.Result {
	req := domain.BookingRequest{
		Name:        stringField(payload, "name"),
		Email:       stringField(payload, "email"),
		Date:        stringField(payload, "date"),
		Time:        stringField(payload, "time"),
		ProjectType: stringField(payload, "projectType"),
	}

	if err := uc.emailService.SendBookingConfirmation(email.BookingEmailData(req)); err != nil {
		return domain.Result{
			Message: "Failed to send booking confirmation email: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	}

	uc.archiveBooking(ctx, req)

	return domain.Result{
		Success: true,
		Message: "Booking confirmation email sent successfully",
		Code:    http.StatusOK,
	}
}

func (uc *mailUsecase) sendContact(ctx context.Context, payload map[string]any) domain.Result {
	req := domain.ContactRequest{
		Name:    stringField(payload, "name"),
		Email:   stringField(payload, "email"),
		Subject: stringField(payload, "subject"),
		Message: stringField(payload, "message"),
	}

	if err := uc.emailService.SendContactNotification(email.ContactEmailData(req)); err != nil {
		return domain.Result{
			Message: "Failed to send contact notification email: " + err.Error(),
			Code:    http.StatusInternalServerError,
		}
	}

	uc.archiveContact(ctx, req)

	return domain.Result{
		Success: true,
		Message: "Contact notification emails sent successfully",
		Code:    http.StatusOK,
	}
}

// archiveBooking records a processed booking. Best-effort: a storage
// failure is logged and never alters the send outcome.
func (uc *mailUsecase) archiveBooking(ctx context.Context, req domain.BookingRequest) {
	record := &domain.BookingRecord{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		ProjectType: req.ProjectType,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.submissions.SaveBooking(ctx, record); err != nil {
		uc.log.Error("Failed to archive booking submission", "error", err)
	}
}

func (uc *mailUsecase) archiveContact(ctx context.Context, req domain.ContactRequest) {
	record := &domain.ContactRecord{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.submissions.SaveContact(ctx, record); err != nil {
		uc.log.Error("Failed to archive contact submission", "error", err)
	}
}

// firstMissingField reports the first required field absent from the
// payload, in declared order. Presence is a membership test only: any
// value, including an empty string, satisfies it.
func firstMissingField(payload map[string]any, fields []string) (string, bool) {
	for _, field := range fields {
		if _, exists := payload[field]; !exists {
			return field, false
		}
	}
	return "", true
}

func missingFieldResult(field string) domain.Result {
	return domain.Result{
		Message: "Missing required field: " + field,
		Code:    http.StatusBadRequest,
	}
}

func stringField(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
