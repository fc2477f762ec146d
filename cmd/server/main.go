package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/db"
	rpmGrpc "github.com/Sinon1310/CareSync-sub000/pkg/grpc"
	rpmHttp "github.com/Sinon1310/CareSync-sub000/pkg/http"
	"github.com/Sinon1310/CareSync-sub000/pkg/monitor"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
	"github.com/Sinon1310/CareSync-sub000/pkg/roster"
)

const (
	defaultHttpHostPort         = ":1080"
	defaultReminderPollInterval = 30 * time.Second
	rosterCacheTTL              = 24 * time.Hour
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	dbInstance := db.GetInstance(db.UseDialector(os.Getenv(common.EnvKeyRPMDBType)))

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRPMGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRPMHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyRPMDefaultRate), 64); err != nil {
		log.Fatal("Invalid RPM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyRPMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid RPM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	pollInterval := defaultReminderPollInterval
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyRPMReminderPollInterval)); raw != "" {
		if pollInterval, err = time.ParseDuration(raw); err != nil || pollInterval <= 0 {
			log.Fatal("Invalid RPM_REMINDER_POLL_INTERVAL, should be a positive duration such as 30s")
		}
	}

	logger := common.GetLogger()

	var cache roster.Cache
	if redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyRPMRedisAddr)); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to reach redis at %s: %v", redisAddr, err)
		}
		defer client.Close()
		cache = roster.NewRedisCache(client, rosterCacheTTL)
		logger.Info("Roster cache backed by redis", zap.String("addr", redisAddr))
	} else {
		cache = roster.NewMemoryCache()
		logger.Info("Roster cache kept in memory")
	}

	hub := realtime.NewHub()
	monitorCore := monitor.New(*dbInstance, hub, cache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go monitorCore.RunReminderPoller(ctx, pollInterval)
	logger.Info("Reminder poller started", zap.Duration("interval", pollInterval))

	var grpcServer *grpc.Server
	if grpcHostPort != "" {
		monitorGrpcServer := rpmGrpc.MonitorServer{
			Monitor:          monitorCore,
			RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		}
		interceptor := monitorGrpcServer.CreateRateLimitInterceptor([]any{
			&rpmGrpc.SubmitReadingRequest{},
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		rpmGrpc.RegisterMonitorServiceServer(grpcServer, &monitorGrpcServer)
		logger.Info("gRPC server created with:",
			zap.String("default_limiter",
				fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

		listener, err := net.Listen("tcp", grpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + grpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = defaultHttpHostPort
	}

	rs := &rpmHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          monitorCore,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	httpServer := &http.Server{Addr: httpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + httpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	// open streams end when the hub closes, so close it before draining
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	_ = logger.Sync()
}
