package v1_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-email-backend/config"
	v1 "go-email-backend/internal/delivery/http/v1"
	"go-email-backend/internal/repository/memory"
	"go-email-backend/internal/usecase"
	"go-email-backend/pkg/email"
	"go-email-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	sent   []*email.Message
	calls  int
	failOn int
}

func (f *fakeTransport) Send(msg *email.Message) error {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return errors.New("connection refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

// newTestRouter wires the full stack with a fake transport and an
// in-memory submission archive.
func newTestRouter(t *testing.T, transport *fakeTransport) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	store, err := config.NewSMTPStore(filepath.Join(t.TempDir(), "smtp_config.json"), config.SMTPSettings{
		Server:      "smtp.example.com",
		Port:        "587",
		Username:    "mailer@example.com",
		Password:    "secret",
		SenderEmail: "info@ddarchitecture.com",
	})
	require.NoError(t, err)

	repo := memory.NewSubmissionRepository()
	emailService := email.NewEmailService(transport)

	return v1.NewRouter(v1.RouterDeps{
		MailUC:       usecase.NewMailUsecase(emailService, repo),
		AdminUC:      usecase.NewAdminUsecase(store, validator.New()),
		SubmissionUC: usecase.NewSubmissionUsecase(repo),
		Config: &config.Config{
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 1000,
		},
	})
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeTransport{})

	w := doJSON(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "email-service", body["service"])
}

func TestBookingEndpoint(t *testing.T) {
	payload := map[string]any{
		"name":        "John Doe",
		"email":       "test@example.com",
		"date":        "2023-05-20",
		"time":        "10:00 AM",
		"projectType": "Residential Renovation",
	}

	t.Run("Should return 200 and send one email", func(t *testing.T) {
		transport := &fakeTransport{}
		router := newTestRouter(t, transport)

		w := doJSON(router, http.MethodPost, "/api/send-email/booking", payload)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Booking confirmation email sent successfully", body["message"])
		assert.Equal(t, 1, transport.calls)
	})

	t.Run("Should return 400 for a missing field and send nothing", func(t *testing.T) {
		transport := &fakeTransport{}
		router := newTestRouter(t, transport)

		incomplete := map[string]any{}
		for k, v := range payload {
			incomplete[k] = v
		}
		delete(incomplete, "projectType")

		w := doJSON(router, http.MethodPost, "/api/send-email/booking", incomplete)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Missing required field: projectType", body["message"])
		assert.Zero(t, transport.calls)
	})

	t.Run("Should return 500 when the transport fails", func(t *testing.T) {
		transport := &fakeTransport{failOn: 1}
		router := newTestRouter(t, transport)

		w := doJSON(router, http.MethodPost, "/api/send-email/booking", payload)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "Failed to send booking confirmation email: ")
	})
}

func TestContactEndpoint(t *testing.T) {
	transport := &fakeTransport{}
	router := newTestRouter(t, transport)

	w := doJSON(router, http.MethodPost, "/api/send-email/contact", map[string]any{
		"name":    "Jane",
		"email":   "jane@x.com",
		"subject": "Quote",
		"message": "Hi",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Contact notification emails sent successfully", body["message"])
	assert.Equal(t, 2, transport.calls)
}

func TestSendTestEmailEndpoint(t *testing.T) {
	t.Run("Should require an email address", func(t *testing.T) {
		router := newTestRouter(t, &fakeTransport{})

		w := doJSON(router, http.MethodPost, "/api/send-test-email", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email address is required", decode(t, w)["message"])
	})

	t.Run("Should confirm delivery to the recipient", func(t *testing.T) {
		router := newTestRouter(t, &fakeTransport{})

		w := doJSON(router, http.MethodPost, "/api/send-test-email", map[string]any{"email": "ops@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Test email sent successfully to ops@example.com", decode(t, w)["message"])
	})
}

func TestEmailStatusEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeTransport{})

	w := doJSON(router, http.MethodGet, "/api/test-email", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "configured", body["status"])
	assert.Equal(t, "smtp.example.com", body["server"])
	assert.Equal(t, "mai***", body["username"])
}

func TestSMTPConfigEndpoint(t *testing.T) {
	t.Run("Should name the missing field", func(t *testing.T) {
		router := newTestRouter(t, &fakeTransport{})

		w := doJSON(router, http.MethodPost, "/api/smtp-config", map[string]any{
			"server":   "smtp-relay.brevo.com",
			"port":     "2525",
			"password": "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required field: username", decode(t, w)["message"])
	})

	t.Run("Should save and apply the new settings", func(t *testing.T) {
		router := newTestRouter(t, &fakeTransport{})

		w := doJSON(router, http.MethodPost, "/api/smtp-config", map[string]any{
			"server":   "smtp-relay.brevo.com",
			"port":     "2525",
			"username": "relay@example.com",
			"password": "newsecret",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "SMTP configuration saved successfully", decode(t, w)["message"])

		status := decode(t, doJSON(router, http.MethodGet, "/api/test-email", nil))
		assert.Equal(t, "smtp-relay.brevo.com", status["server"])
		assert.Equal(t, "rel***", status["username"])
	})
}

func TestSubmissionListEndpoints(t *testing.T) {
	transport := &fakeTransport{}
	router := newTestRouter(t, transport)

	doJSON(router, http.MethodPost, "/api/send-email/booking", map[string]any{
		"name":        "John Doe",
		"email":       "test@example.com",
		"date":        "2023-05-20",
		"time":        "10:00 AM",
		"projectType": "Residential Renovation",
	})

	w := doJSON(router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	booking := data[0].(map[string]any)
	assert.Equal(t, "John Doe", booking["name"])
}
