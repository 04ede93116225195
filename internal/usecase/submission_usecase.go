package usecase

import (
	"context"

	"go-email-backend/internal/domain"
)

type submissionUsecase struct {
	submissions domain.SubmissionRepository
}

func NewSubmissionUsecase(submissions domain.SubmissionRepository) domain.SubmissionUsecase {
	return &submissionUsecase{submissions: submissions}
}

func (uc *submissionUsecase) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	return uc.submissions.ListBookings(ctx)
}

func (uc *submissionUsecase) ListContacts(ctx context.Context) ([]domain.ContactRecord, error) {
	return uc.submissions.ListContacts(ctx)
}
