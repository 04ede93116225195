package memory_test

import (
	"context"
	"testing"
	"time"

	"go-email-backend/internal/domain"
	"go-email-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionRepo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSubmissionRepository()

	booking := &domain.BookingRecord{
		ID:          "b1",
		Name:        "John Doe",
		Email:       "test@example.com",
		Date:        "2023-05-20",
		Time:        "10:00 AM",
		ProjectType: "Residential Renovation",
		CreatedAt:   time.Now().UTC(),
	}
	contact := &domain.ContactRecord{
		ID:        "c1",
		Name:      "Jane",
		Email:     "jane@x.com",
		Subject:   "Quote",
		Message:   "Hi",
		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.SaveBooking(ctx, booking))
	require.NoError(t, repo.SaveContact(ctx, contact))

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, *booking, bookings[0])

	contacts, err := repo.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, *contact, contacts[0])

	// Mutating a returned slice must not affect the stored records.
	bookings[0].Name = "changed"
	again, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again[0].Name)
}
