package v1

import (
	"net/http"

	"go-email-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	mailUC domain.MailUsecase
}

// NewEmailHandler registers the email dispatch routes (public, no auth
// required).
func NewEmailHandler(api *gin.RouterGroup, mailUC domain.MailUsecase) {
	handler := &EmailHandler{
		mailUC: mailUC,
	}

	api.POST("/send-email/booking", handler.SendBookingEmail)
	api.POST("/send-email/contact", handler.SendContactEmail)
	api.POST("/send-test-email", handler.SendTestEmail)
}

// SendBookingEmail godoc
// @Summary      Send Booking Confirmation
// @Description  Validate a booking submission and email a consultation confirmation to the requester.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        booking  body      domain.BookingRequest  true  "Booking Data"
// @Success      200      {object}  domain.Result
// @Failure      400      {object}  domain.Result
// @Failure      500      {object}  domain.Result
// @Router       /api/send-email/booking [post]
func (h *EmailHandler) SendBookingEmail(c *gin.Context) {
	h.dispatch(c, domain.KindBooking)
}

// SendContactEmail godoc
// @Summary      Send Contact Notification
// @Description  Validate a contact form submission, notify the studio, and acknowledge the requester.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.Result
// @Failure      400      {object}  domain.Result
// @Failure      500      {object}  domain.Result
// @Router       /api/send-email/contact [post]
func (h *EmailHandler) SendContactEmail(c *gin.Context) {
	h.dispatch(c, domain.KindContact)
}

func (h *EmailHandler) dispatch(c *gin.Context, kind string) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusInternalServerError, domain.Result{
			Message: "Error processing request: " + err.Error(),
		})
		return
	}

	res := h.mailUC.Dispatch(c.Request.Context(), kind, payload)
	c.JSON(res.Code, res)
}

// SendTestEmail godoc
// @Summary      Send Test Email
// @Description  Send a minimal test email to verify the SMTP transport end to end.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        request  body      object{email=string}  true  "Recipient"
// @Success      200      {object}  domain.Result
// @Failure      400      {object}  domain.Result
// @Failure      500      {object}  domain.Result
// @Router       /api/send-test-email [post]
func (h *EmailHandler) SendTestEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, domain.Result{
			Message: "Email address is required",
		})
		return
	}

	res := h.mailUC.SendTest(c.Request.Context(), req.Email)
	c.JSON(res.Code, res)
}
