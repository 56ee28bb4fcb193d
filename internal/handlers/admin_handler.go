package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/middleware"
	"github.com/justsurfingit/placement-portal/internal/services"
)

type AdminHandler struct {
	AdminService *services.AdminService
	Log          logrus.FieldLogger
}

func NewAdminHandler(admins *services.AdminService, log logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{AdminService: admins, Log: log}
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.AdminService.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, dtos.DataResponse{Data: admins})
}

func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var req dtos.AdminCreationRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.MessageResponse{Message: "Invalid JSON format: " + err.Error()})
		return
	}
	admin, err := h.AdminService.AddAdmin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	entry := h.Log.WithField("admin_id", admin.ID)
	if claims, ok := middleware.ClaimsFromContext(c); ok {
		entry = entry.WithField("created_by", claims.Principal().ID)
	}
	entry.Info("admin created")
	c.JSON(http.StatusCreated, dtos.DataResponse{Data: admin})
}
