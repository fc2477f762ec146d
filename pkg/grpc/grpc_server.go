package grpc

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/grpc/metadata"

	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
)

const (
	metadataUserID   = "x-user-id"
	metadataUserRole = "x-user-role"
)

type MonitorServer struct {
	Monitor          *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
	UnimplementedMonitorServiceServer
}

func (s *MonitorServer) GetLimiter(patientID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(patientID)
	}
}

func (s *MonitorServer) CheckPatientLimiter(patientID string) bool {
	limiter := s.GetLimiter(patientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// sessionFromContext reads the caller from the incoming metadata.
func sessionFromContext(ctx context.Context) models.Session {
	md, found := metadata.FromIncomingContext(ctx)
	if !found {
		return models.Session{}
	}
	first := func(key string) string {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
		return ""
	}

	sess := models.Session{UserID: first(metadataUserID), Role: models.Role(first(metadataUserRole))}
	switch sess.Role {
	case models.RolePatient, models.RoleDoctor, models.RoleSystem:
		return sess
	}
	return models.Session{}
}

// WithSession attaches a caller to an outgoing context.
func WithSession(ctx context.Context, sess models.Session) context.Context {
	return metadata.AppendToOutgoingContext(ctx, metadataUserID, sess.UserID, metadataUserRole, string(sess.Role))
}
