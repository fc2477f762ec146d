package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type NotificationsQuery struct {
	Unread bool `json:"unread"`
}

var notificationsQuerySchema = z.Struct(z.Shape{
	"unread": z.Bool().Optional(),
})

func (rs *RestfulServer) GetNotifications(c *gin.Context) {
	var query NotificationsQuery
	if err := notificationsQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	notifications, err := rs.Monitor.Notification.ListNotifications(c.Request.Context(), c.Param("recipient_id"), query.Unread)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (rs *RestfulServer) GetUnreadCount(c *gin.Context) {
	count, err := rs.Monitor.Notification.UnreadCount(c.Request.Context(), c.Param("recipient_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (rs *RestfulServer) PostRead(c *gin.Context) {
	err := rs.Monitor.Notification.MarkRead(c.Request.Context(), c.Param("recipient_id"), c.Param("notification_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) PostReadAll(c *gin.Context) {
	count, err := rs.Monitor.Notification.MarkAllRead(c.Request.Context(), c.Param("recipient_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": count})
}

func (rs *RestfulServer) DeleteNotification(c *gin.Context) {
	err := rs.Monitor.Notification.ClearNotification(c.Request.Context(), c.Param("recipient_id"), c.Param("notification_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) DeleteAllNotifications(c *gin.Context) {
	count, err := rs.Monitor.Notification.ClearAll(c.Request.Context(), c.Param("recipient_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": count})
}
