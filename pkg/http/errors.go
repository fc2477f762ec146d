package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
	"github.com/Sinon1310/CareSync-sub000/pkg/vitals"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// session reads the caller from the request headers. The zero session means
// the caller did not identify itself.
func session(c *gin.Context) models.Session {
	sess := models.Session{
		UserID: c.GetHeader(headerUserID),
		Role:   models.Role(c.GetHeader(headerUserRole)),
	}
	switch sess.Role {
	case models.RolePatient, models.RoleDoctor, models.RoleSystem:
	default:
		return models.Session{}
	}
	if sess.UserID == "" {
		return models.Session{}
	}
	return sess
}

func statusOf(err error) int {
	var ire *vitals.InvalidReadingError
	switch {
	case errors.As(err, &ire), errors.Is(err, monitor.ErrInvalidReminder):
		return http.StatusBadRequest
	case errors.Is(err, monitor.ErrPatientNotFound),
		errors.Is(err, monitor.ErrLinkNotFound),
		errors.Is(err, monitor.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, monitor.ErrMissingSession):
		return http.StatusUnauthorized
	case errors.Is(err, monitor.ErrNotDoctor):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// deliveryErrors flattens the side-effect failures of an accepted reading.
func deliveryErrors(err error) []string {
	return common.Mapper(multierr.Errors(err), func(e error) string { return e.Error() })
}
