package v1

import (
	"net/http"

	"go-email-backend/internal/delivery/http/response"
	"go-email-backend/internal/domain"
	"go-email-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the administrative configuration routes.
func NewAdminHandler(api *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{
		adminUC: adminUC,
	}

	api.GET("/test-email", handler.EmailStatus)
	api.POST("/smtp-config", handler.SaveSMTPConfig)
}

// EmailStatus godoc
// @Summary      Email Service Status
// @Description  Reflect whether SMTP transport credentials are configured. The username is masked.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.EmailStatus
// @Router       /api/test-email [get]
func (h *AdminHandler) EmailStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.adminUC.EmailStatus(c.Request.Context()))
}

// SaveSMTPConfig godoc
// @Summary      Save SMTP Configuration
// @Description  Persist new SMTP transport settings and apply them to subsequent sends within this process.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        config  body      domain.SMTPConfigRequest  true  "SMTP Settings"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /api/smtp-config [post]
func (h *AdminHandler) SaveSMTPConfig(c *gin.Context) {
	var req domain.SMTPConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.adminUC.SaveSMTPConfig(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "SMTP configuration saved successfully", nil)
}
