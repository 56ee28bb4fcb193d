package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/justsurfingit/placement-portal/internal/services"
)

// statusFor maps the error taxonomy onto HTTP status codes. Anything not
// recognised is a store failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNameRequired), errors.Is(err, models.ErrDesignationRequired), errors.Is(err, errors.NotValid):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrCompanyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"message": ...}. Store errors are passed through verbatim.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	status := statusFor(err)
	entry := log.WithError(err).WithField("path", c.Request.URL.Path)
	if status >= http.StatusInternalServerError {
		entry.Error("store operation failed")
	} else {
		entry.Debug("request refused")
	}
	c.JSON(status, dtos.MessageResponse{Message: err.Error()})
}

// bindJSON treats an empty body as an empty object so that required field
// checks produce their own message.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
