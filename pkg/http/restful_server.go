package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(patientID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(patientID)
	}
}

func (rs *RestfulServer) CheckPatientLimiter(patientID string) bool {
	limiter := rs.GetLimiter(patientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(patientID string, patientRate float64, patientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.POST("/patients", rs.PostPatient)
	patients := rs.Server.Group("/patients/:patient_id")
	{
		patients.POST("/readings", rs.PostReading)
		patients.GET("/readings", rs.GetReadings)
		patients.GET("/alerts", rs.GetPatientAlerts)
		patients.GET("/limiter", rs.GetLimiterSettings)
		patients.POST("/limiter", rs.PostLimiter)
		patients.DELETE("/limiter", rs.DeleteLimiter)
	}

	rs.Server.POST("/links", rs.PostLink)
	rs.Server.DELETE("/links", rs.DeleteLink)

	doctors := rs.Server.Group("/doctors/:doctor_id")
	{
		doctors.GET("/patients", rs.GetDoctorPatients)
		doctors.GET("/alerts", rs.GetDoctorAlerts)
	}

	recipients := rs.Server.Group("/recipients/:recipient_id")
	{
		recipients.GET("/notifications", rs.GetNotifications)
		recipients.GET("/notifications/count", rs.GetUnreadCount)
		recipients.POST("/notifications/read-all", rs.PostReadAll)
		recipients.DELETE("/notifications", rs.DeleteAllNotifications)
		recipients.POST("/notifications/:notification_id/read", rs.PostRead)
		recipients.DELETE("/notifications/:notification_id", rs.DeleteNotification)
		recipients.GET("/stream", rs.Stream)
	}

	rs.Server.POST("/reminders", rs.PostReminder)
}
