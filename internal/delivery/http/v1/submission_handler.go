package v1

import (
	"net/http"

	"go-email-backend/internal/delivery/http/response"
	"go-email-backend/internal/domain"
	"go-email-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the archived submission read routes.
func NewSubmissionHandler(api *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	api.GET("/bookings", handler.ListBookings)
	api.GET("/contacts", handler.ListContacts)
}

// ListBookings godoc
// @Summary      List Archived Bookings
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.BookingRecord}
// @Failure      500  {object}  response.Response
// @Router       /api/bookings [get]
func (h *SubmissionHandler) ListBookings(c *gin.Context) {
	bookings, err := h.submissionUC.ListBookings(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// ListContacts godoc
// @Summary      List Archived Contact Messages
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ContactRecord}
// @Failure      500  {object}  response.Response
// @Router       /api/contacts [get]
func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	contacts, err := h.submissionUC.ListContacts(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Contacts retrieved successfully", contacts)
}
