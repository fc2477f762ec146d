package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
)

const (
	eventNotification = "notification"
	eventToast        = "toast"
	eventAlerts       = "alerts"

	streamBuffer = 64
)

type streamEvent struct {
	name string
	data any
}

// Stream pushes a recipient's notification changes and toasts as server-sent
// events. Doctors additionally get their full alert set whenever a reading
// from one of their patients arrives.
func (rs *RestfulServer) Stream(c *gin.Context) {
	recipientID := c.Param("recipient_id")
	sess := session(c)
	logger := common.GetCategoryLogger(common.LoggerNameRestfulServer, common.LoggerCategorySubscription).
		With(zap.String("recipient_id", recipientID))

	if sess.IsZero() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	if sess.UserID != recipientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "can only stream your own notifications"})
		return
	}
	if rs.Monitor.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "realtime feed not available"})
		return
	}

	events := make(chan streamEvent, streamBuffer)
	push := func(e streamEvent) {
		select {
		case events <- e:
		default:
			logger.Warn("Stream event dropped", zap.String("event", e.name))
		}
	}

	unsubscribeNotifications, err := rs.Monitor.Hub.SubscribeToNotifications(recipientID, func(change realtime.NotificationChange) {
		push(streamEvent{name: eventNotification, data: change})
	})
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}
	defer unsubscribeNotifications()

	unsubscribeToasts, err := rs.Monitor.Hub.SubscribeToToasts(recipientID, func(a alerting.Alert) {
		push(streamEvent{name: eventToast, data: a})
	})
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}
	defer unsubscribeToasts()

	ctx := c.Request.Context()
	if sess.Role == models.RoleDoctor {
		stop, err := rs.Monitor.WatchDoctor(ctx, sess, func(alerts []alerting.Alert) {
			push(streamEvent{name: eventAlerts, data: alerts})
		})
		if err != nil {
			writeError(c, err)
			return
		}
		defer stop()
	}

	logger.Info("Stream opened", zap.String("role", string(sess.Role)))
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	c.Stream(func(io.Writer) bool {
		select {
		case e := <-events:
			c.SSEvent(e.name, e.data)
			return true
		case <-ctx.Done():
			return false
		case <-rs.Monitor.Hub.Done():
			return false
		}
	})

	logger.Info("Stream closed")
}

func writeSubscriptionError(c *gin.Context, err error) {
	if errors.Is(err, realtime.ErrHubClosed) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	writeError(c, err)
}
