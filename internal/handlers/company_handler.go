package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
	Log            logrus.FieldLogger
}

func NewCompanyHandler(companies *services.CompanyService, log logrus.FieldLogger) *CompanyHandler {
	return &CompanyHandler{CompanyService: companies, Log: log}
}

// ListCompanies is the GET /companies endpoint
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.CompanyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, dtos.DataResponse{Data: companies})
}

// AddCompany is the POST /addCompany endpoint
func (h *CompanyHandler) AddCompany(c *gin.Context) {
	var req dtos.CompanyCreationRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.MessageResponse{Message: "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.CompanyService.AddCompany(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	h.Log.WithField("company_id", company.ID).Info("company created")
	c.JSON(http.StatusCreated, dtos.DataResponse{Data: company})
}
