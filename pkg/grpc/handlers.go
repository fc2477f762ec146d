package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
)

const streamBuffer = 64

func validateID(id *string) z.ZogIssueList {
	var idValidator = z.String().Min(1).Required()
	return idValidator.Validate(id)
}

func validationFailed(err any) *StatusResponse {
	return failed(fmt.Sprintf("validation error: %v", err))
}

var readingValidator = z.Struct(z.Shape{
	"type": z.String().Required().OneOf([]string{
		string(models.VitalTypeBloodPressure),
		string(models.VitalTypeBloodSugar),
		string(models.VitalTypeHeartRate),
		string(models.VitalTypeTemperature),
	}),
	"value": z.String().Required(),
})

func (s *MonitorServer) SubmitReading(ctx context.Context, req *SubmitReadingRequest) (*SubmitReadingResponse, error) {
	if err := validateID(&req.PatientId); err != nil {
		return &SubmitReadingResponse{Status: validationFailed(err)}, nil
	}
	if err := readingValidator.Validate(req); err != nil {
		return &SubmitReadingResponse{Status: validationFailed(err)}, nil
	}

	reading, notifications, err := s.Monitor.Reading.SubmitReading(
		ctx,
		sessionFromContext(ctx),
		req.PatientId,
		models.VitalType(req.Type),
		req.Value,
		req.RecordedAt,
	)
	if reading == nil {
		return &SubmitReadingResponse{Status: failed(err.Error())}, nil
	}

	return &SubmitReadingResponse{
		Status:         ok(),
		Reading:        reading,
		Notifications:  notifications,
		DeliveryErrors: common.Mapper(multierr.Errors(err), func(e error) string { return e.Error() }),
	}, nil
}

func (s *MonitorServer) GetDoctorAlerts(ctx context.Context, req *DoctorRequest) (*GetAlertsResponse, error) {
	if err := validateID(&req.DoctorId); err != nil {
		return &GetAlertsResponse{Status: validationFailed(err)}, nil
	}

	alerts, err := s.Monitor.Alert.DoctorAlerts(ctx, req.DoctorId)
	if err != nil {
		return &GetAlertsResponse{
			Status: failed(err.Error()),
			Alerts: nil,
		}, nil
	}

	return &GetAlertsResponse{Status: ok(), Alerts: alerts}, nil
}

func (s *MonitorServer) ListNotifications(ctx context.Context, req *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	if err := validateID(&req.RecipientId); err != nil {
		return &ListNotificationsResponse{Status: validationFailed(err)}, nil
	}

	notifications, err := s.Monitor.Notification.ListNotifications(ctx, req.RecipientId, req.UnreadOnly)
	if err != nil {
		return &ListNotificationsResponse{Status: failed(err.Error())}, nil
	}
	unread, err := s.Monitor.Notification.UnreadCount(ctx, req.RecipientId)
	if err != nil {
		return &ListNotificationsResponse{Status: failed(err.Error())}, nil
	}

	return &ListNotificationsResponse{Status: ok(), Notifications: notifications, Unread: unread}, nil
}

func (s *MonitorServer) MarkNotificationRead(ctx context.Context, req *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error) {
	if err := validateID(&req.RecipientId); err != nil {
		return &MarkNotificationReadResponse{Status: validationFailed(err)}, nil
	}
	if err := validateID(&req.NotificationId); err != nil {
		return &MarkNotificationReadResponse{Status: validationFailed(err)}, nil
	}

	if err := s.Monitor.Notification.MarkRead(ctx, req.RecipientId, req.NotificationId); err != nil {
		return &MarkNotificationReadResponse{Status: failed(err.Error())}, nil
	}

	return &MarkNotificationReadResponse{Status: ok()}, nil
}

func (s *MonitorServer) LinkDoctor(ctx context.Context, req *LinkDoctorRequest) (*LinkDoctorResponse, error) {
	if err := validateID(&req.DoctorId); err != nil {
		return &LinkDoctorResponse{Status: validationFailed(err)}, nil
	}
	if err := validateID(&req.PatientId); err != nil {
		return &LinkDoctorResponse{Status: validationFailed(err)}, nil
	}

	link, err := s.Monitor.Link.LinkDoctor(ctx, req.DoctorId, req.PatientId)
	if err != nil {
		return &LinkDoctorResponse{Status: failed(err.Error())}, nil
	}

	return &LinkDoctorResponse{Status: ok(), Link: link}, nil
}

func (s *MonitorServer) PostLimiter(ctx context.Context, req *PostLimiterRequest) (*PostLimiterResponse, error) {
	if err := validateID(&req.PatientId); err != nil {
		return &PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var rateValidator = z.Float64().Required()
	if err := rateValidator.Validate(&req.PatientRate); err != nil {
		return &PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	var burstValidator = z.Int32().Required()
	if err := burstValidator.Validate(&req.PatientBurst); err != nil {
		return &PostLimiterResponse{Status: validationFailed(err)}, nil
	}

	if s.RateLimiterStore == nil {
		return &PostLimiterResponse{
			Status: failed("RateLimiterStore is not used. No effect."),
		}, nil
	}

	s.RateLimiterStore.SetLimiter(req.PatientId, rate.Limit(req.PatientRate), int(req.PatientBurst))
	return &PostLimiterResponse{Status: ok()}, nil
}

// SubscribeNotifications streams the recipient's notification changes and
// toasts. The response header is sent once the subscription is live.
func (s *MonitorServer) SubscribeNotifications(req *SubscribeNotificationsRequest, stream MonitorService_SubscribeNotificationsServer) error {
	ctx := stream.Context()
	logger := common.GetCategoryLogger(common.LoggerNameGrpcServer, common.LoggerCategorySubscription).
		With(zap.String("recipient_id", req.RecipientId))

	if err := validateID(&req.RecipientId); err != nil {
		return status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}
	sess := sessionFromContext(ctx)
	if sess.IsZero() {
		return status.Error(codes.Unauthenticated, "missing session")
	}
	if sess.UserID != req.RecipientId {
		return status.Error(codes.PermissionDenied, "can only subscribe to your own notifications")
	}
	hub := s.Monitor.Hub
	if hub == nil {
		return status.Error(codes.Unavailable, "realtime feed not available")
	}

	events := make(chan *NotificationEvent, streamBuffer)
	push := func(e *NotificationEvent) {
		select {
		case events <- e:
		default:
			logger.Warn("Stream event dropped")
		}
	}

	unsubscribeNotifications, err := hub.SubscribeToNotifications(req.RecipientId, func(change realtime.NotificationChange) {
		push(&NotificationEvent{Change: &change})
	})
	if err != nil {
		return status.Error(codes.Unavailable, err.Error())
	}
	defer unsubscribeNotifications()

	unsubscribeToasts, err := hub.SubscribeToToasts(req.RecipientId, func(a alerting.Alert) {
		push(&NotificationEvent{Toast: &a})
	})
	if err != nil {
		return status.Error(codes.Unavailable, err.Error())
	}
	defer unsubscribeToasts()

	if err := stream.SendHeader(metadata.Pairs("x-subscribed", "true")); err != nil {
		return err
	}
	logger.Info("Subscription opened")

	for {
		select {
		case e := <-events:
			if err := stream.Send(e); err != nil {
				return err
			}
		case <-ctx.Done():
			logger.Info("Subscription closed")
			return nil
		case <-hub.Done():
			return status.Error(codes.Unavailable, "realtime feed closed")
		}
	}
}
