package usecase

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"go-email-backend/config"
	"go-email-backend/internal/domain"
	"go-email-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type adminUsecase struct {
	store    *config.SMTPStore
	validate *validator.Validate
}

// NewAdminUsecase creates the usecase behind the administrative
// configuration endpoints.
func NewAdminUsecase(store *config.SMTPStore, validate *validator.Validate) domain.AdminUsecase {
	// Report fields by their json names so validation errors match the
	// wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &adminUsecase{
		store:    store,
		validate: validate,
	}
}

// SaveSMTPConfig validates and persists new transport settings, then
// swaps them in for subsequent sends within this process.
func (uc *adminUsecase) SaveSMTPConfig(ctx context.Context, req *domain.SMTPConfigRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperror.BadRequest("Missing required field: " + verrs[0].Field())
		}
		return apperror.BadRequest(err.Error())
	}

	settings := config.SMTPSettings{
		Server:      req.Server,
		Port:        req.Port,
		Username:    req.Username,
		Password:    req.Password,
		SenderEmail: req.SenderEmail,
	}
	// sender_email is optional; keep the configured sender when omitted.
	if settings.SenderEmail == "" {
		settings.SenderEmail = uc.store.Current().SenderEmail
	}

	if err := uc.store.Update(settings); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to save SMTP configuration", err)
	}
	return nil
}

// EmailStatus reflects the transport credential state. The username is
// masked before leaving the process.
func (uc *adminUsecase) EmailStatus(ctx context.Context) domain.EmailStatus {
	current := uc.store.Current()
	status := domain.EmailStatus{
		Server:   current.Server,
		Port:     current.Port,
		Username: config.MaskUsername(current.Username),
	}
	if uc.store.IsConfigured() {
		status.Status = "configured"
		status.Message = "SMTP credentials are configured"
	} else {
		status.Status = "not_configured"
		status.Message = "SMTP credentials are not set"
	}
	return status
}
