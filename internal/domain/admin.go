package domain

import "context"

// SMTPConfigRequest is the administrative payload that rewrites the
// transport settings. SenderEmail is optional; an empty value keeps the
// currently configured sender.
type SMTPConfigRequest struct {
	Server      string `json:"server" validate:"required"`
	Port        string `json:"port" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	SenderEmail string `json:"sender_email"`
}

// EmailStatus reflects whether transport credentials are configured.
// Username is always masked before it leaves the process.
type EmailStatus struct {
	Status   string `json:"status"`
	Server   string `json:"server"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// AdminUsecase covers the administrative configuration operations.
type AdminUsecase interface {
	SaveSMTPConfig(ctx context.Context, req *SMTPConfigRequest) error
	EmailStatus(ctx context.Context) EmailStatus
}
