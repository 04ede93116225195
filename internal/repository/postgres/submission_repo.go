package postgres

import (
	"context"

	"go-email-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository returns a Postgres-backed submission archive.
// Schema lives in scripts/schema.sql.
func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) SaveBooking(ctx context.Context, booking *domain.BookingRecord) error {
	query := `INSERT INTO bookings (id, name, email, date, "time", project_type, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		booking.ID, booking.Name, booking.Email, booking.Date, booking.Time, booking.ProjectType, booking.CreatedAt,
	)
	return err
}

func (r *submissionRepo) SaveContact(ctx context.Context, contact *domain.ContactRecord) error {
	query := `INSERT INTO contacts (id, name, email, subject, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message, contact.CreatedAt,
	)
	return err
}

func (r *submissionRepo) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	query := `SELECT id, name, email, date, "time", project_type, created_at
              FROM bookings ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingRecord
	for rows.Next() {
		var b domain.BookingRecord
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Date, &b.Time, &b.ProjectType, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *submissionRepo) ListContacts(ctx context.Context) ([]domain.ContactRecord, error) {
	query := `SELECT id, name, email, subject, message, created_at
              FROM contacts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.ContactRecord
	for rows.Next() {
		var c domain.ContactRecord
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
