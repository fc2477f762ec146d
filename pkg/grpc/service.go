package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MonitorService_SubmitReading_FullMethodName          = "/rpm.v1.MonitorService/SubmitReading"
	MonitorService_GetDoctorAlerts_FullMethodName        = "/rpm.v1.MonitorService/GetDoctorAlerts"
	MonitorService_ListNotifications_FullMethodName      = "/rpm.v1.MonitorService/ListNotifications"
	MonitorService_MarkNotificationRead_FullMethodName   = "/rpm.v1.MonitorService/MarkNotificationRead"
	MonitorService_LinkDoctor_FullMethodName             = "/rpm.v1.MonitorService/LinkDoctor"
	MonitorService_PostLimiter_FullMethodName            = "/rpm.v1.MonitorService/PostLimiter"
	MonitorService_SubscribeNotifications_FullMethodName = "/rpm.v1.MonitorService/SubscribeNotifications"
)

// MonitorServiceClient is the client API for rpm.v1.MonitorService.
type MonitorServiceClient interface {
	SubmitReading(ctx context.Context, in *SubmitReadingRequest, opts ...grpc.CallOption) (*SubmitReadingResponse, error)
	GetDoctorAlerts(ctx context.Context, in *DoctorRequest, opts ...grpc.CallOption) (*GetAlertsResponse, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error)
	LinkDoctor(ctx context.Context, in *LinkDoctorRequest, opts ...grpc.CallOption) (*LinkDoctorResponse, error)
	PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error)
	SubscribeNotifications(ctx context.Context, in *SubscribeNotificationsRequest, opts ...grpc.CallOption) (MonitorService_SubscribeNotificationsClient, error)
}

type monitorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMonitorServiceClient(cc grpc.ClientConnInterface) MonitorServiceClient {
	return &monitorServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}

func (c *monitorServiceClient) SubmitReading(ctx context.Context, in *SubmitReadingRequest, opts ...grpc.CallOption) (*SubmitReadingResponse, error) {
	out := new(SubmitReadingResponse)
	if err := c.cc.Invoke(ctx, MonitorService_SubmitReading_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) GetDoctorAlerts(ctx context.Context, in *DoctorRequest, opts ...grpc.CallOption) (*GetAlertsResponse, error) {
	out := new(GetAlertsResponse)
	if err := c.cc.Invoke(ctx, MonitorService_GetDoctorAlerts_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	out := new(ListNotificationsResponse)
	if err := c.cc.Invoke(ctx, MonitorService_ListNotifications_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error) {
	out := new(MarkNotificationReadResponse)
	if err := c.cc.Invoke(ctx, MonitorService_MarkNotificationRead_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) LinkDoctor(ctx context.Context, in *LinkDoctorRequest, opts ...grpc.CallOption) (*LinkDoctorResponse, error) {
	out := new(LinkDoctorResponse)
	if err := c.cc.Invoke(ctx, MonitorService_LinkDoctor_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) PostLimiter(ctx context.Context, in *PostLimiterRequest, opts ...grpc.CallOption) (*PostLimiterResponse, error) {
	out := new(PostLimiterResponse)
	if err := c.cc.Invoke(ctx, MonitorService_PostLimiter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) SubscribeNotifications(ctx context.Context, in *SubscribeNotificationsRequest, opts ...grpc.CallOption) (MonitorService_SubscribeNotificationsClient, error) {
	stream, err := c.cc.NewStream(ctx, &MonitorService_ServiceDesc.Streams[0], MonitorService_SubscribeNotifications_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &monitorServiceSubscribeNotificationsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type MonitorService_SubscribeNotificationsClient interface {
	Recv() (*NotificationEvent, error)
	grpc.ClientStream
}

type monitorServiceSubscribeNotificationsClient struct {
	grpc.ClientStream
}

func (x *monitorServiceSubscribeNotificationsClient) Recv() (*NotificationEvent, error) {
	m := new(NotificationEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MonitorServiceServer is the server API for rpm.v1.MonitorService.
type MonitorServiceServer interface {
	SubmitReading(context.Context, *SubmitReadingRequest) (*SubmitReadingResponse, error)
	GetDoctorAlerts(context.Context, *DoctorRequest) (*GetAlertsResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error)
	LinkDoctor(context.Context, *LinkDoctorRequest) (*LinkDoctorResponse, error)
	PostLimiter(context.Context, *PostLimiterRequest) (*PostLimiterResponse, error)
	SubscribeNotifications(*SubscribeNotificationsRequest, MonitorService_SubscribeNotificationsServer) error
}

// UnimplementedMonitorServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMonitorServiceServer struct{}

func (UnimplementedMonitorServiceServer) SubmitReading(context.Context, *SubmitReadingRequest) (*SubmitReadingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitReading not implemented")
}
func (UnimplementedMonitorServiceServer) GetDoctorAlerts(context.Context, *DoctorRequest) (*GetAlertsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDoctorAlerts not implemented")
}
func (UnimplementedMonitorServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNotifications not implemented")
}
func (UnimplementedMonitorServiceServer) MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkNotificationRead not implemented")
}
func (UnimplementedMonitorServiceServer) LinkDoctor(context.Context, *LinkDoctorRequest) (*LinkDoctorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LinkDoctor not implemented")
}
func (UnimplementedMonitorServiceServer) PostLimiter(context.Context, *PostLimiterRequest) (*PostLimiterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostLimiter not implemented")
}
func (UnimplementedMonitorServiceServer) SubscribeNotifications(*SubscribeNotificationsRequest, MonitorService_SubscribeNotificationsServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeNotifications not implemented")
}

func RegisterMonitorServiceServer(s grpc.ServiceRegistrar, srv MonitorServiceServer) {
	s.RegisterService(&MonitorService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](fullMethod string, call func(MonitorServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MonitorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MonitorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func _MonitorService_SubscribeNotifications_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeNotificationsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MonitorServiceServer).SubscribeNotifications(m, &monitorServiceSubscribeNotificationsServer{stream})
}

type MonitorService_SubscribeNotificationsServer interface {
	Send(*NotificationEvent) error
	grpc.ServerStream
}

type monitorServiceSubscribeNotificationsServer struct {
	grpc.ServerStream
}

func (x *monitorServiceSubscribeNotificationsServer) Send(m *NotificationEvent) error {
	return x.ServerStream.SendMsg(m)
}

// MonitorService_ServiceDesc is the grpc.ServiceDesc for rpm.v1.MonitorService.
var MonitorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rpm.v1.MonitorService",
	HandlerType: (*MonitorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitReading",
			Handler:    unaryHandler(MonitorService_SubmitReading_FullMethodName, MonitorServiceServer.SubmitReading),
		},
		{
			MethodName: "GetDoctorAlerts",
			Handler:    unaryHandler(MonitorService_GetDoctorAlerts_FullMethodName, MonitorServiceServer.GetDoctorAlerts),
		},
		{
			MethodName: "ListNotifications",
			Handler:    unaryHandler(MonitorService_ListNotifications_FullMethodName, MonitorServiceServer.ListNotifications),
		},
		{
			MethodName: "MarkNotificationRead",
			Handler:    unaryHandler(MonitorService_MarkNotificationRead_FullMethodName, MonitorServiceServer.MarkNotificationRead),
		},
		{
			MethodName: "LinkDoctor",
			Handler:    unaryHandler(MonitorService_LinkDoctor_FullMethodName, MonitorServiceServer.LinkDoctor),
		},
		{
			MethodName: "PostLimiter",
			Handler:    unaryHandler(MonitorService_PostLimiter_FullMethodName, MonitorServiceServer.PostLimiter),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeNotifications",
			Handler:       _MonitorService_SubscribeNotifications_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "rpm/v1/monitor_service",
}
