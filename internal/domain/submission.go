package domain

import "context"

// SubmissionRepository archives processed bookings and contact messages.
// Archiving is best-effort: a repository failure never changes the
// outcome of the send that preceded it.
type SubmissionRepository interface {
	SaveBooking(ctx context.Context, booking *BookingRecord) error
	SaveContact(ctx context.Context, contact *ContactRecord) error
	ListBookings(ctx context.Context) ([]BookingRecord, error)
	ListContacts(ctx context.Context) ([]ContactRecord, error)
}

// SubmissionUsecase exposes the archived submissions read-side.
type SubmissionUsecase interface {
	ListBookings(ctx context.Context) ([]BookingRecord, error)
	ListContacts(ctx context.Context) ([]ContactRecord, error)
}
