package domain

import "time"

// BookingRequest represents a consultation booking submission. Date is an
// ISO calendar date (YYYY-MM-DD); Time is free-form display text.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ProjectType string `json:"projectType"`
}

// BookingRecord is an archived booking submission.
type BookingRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ProjectType string    `json:"projectType"`
	CreatedAt   time.Time `json:"createdAt"`
}
