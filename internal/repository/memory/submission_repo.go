package memory

import (
	"context"
	"sync"

	"go-email-backend/internal/domain"
)

// submissionRepo is the in-memory submission archive used when no
// database is configured. Contents do not survive a restart.
type submissionRepo struct {
	mu       sync.RWMutex
	bookings []domain.BookingRecord
	contacts []domain.ContactRecord
}

func NewSubmissionRepository() domain.SubmissionRepository {
	return &submissionRepo{}
}

func (r *submissionRepo) SaveBooking(ctx context.Context, booking *domain.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *submissionRepo) SaveContact(ctx context.Context, contact *domain.ContactRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, *contact)
	return nil
}

func (r *submissionRepo) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BookingRecord, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *submissionRepo) ListContacts(ctx context.Context) ([]domain.ContactRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ContactRecord, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}
