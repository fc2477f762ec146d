package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyRPMDBType      string = "RPM_DB_TYPE"
	EnvKeyRPMDbPath      string = "RPM_DB_PATH"
	EnvKeyRPMPostgresDSN string = "RPM_POSTGRES_DSN"
	EnvKeyRPMRedisAddr   string = "RPM_REDIS_ADDR"
	EnvKeyRPMLogDir      string = "RPM_LOG_DIR"

	EnvKeyRPMHttpHostPort string = "RPM_HTTP_HOST_PORT"
	EnvKeyRPMGrpcHostPort string = "RPM_GRPC_HOST_PORT"

	EnvKeyRPMDefaultRate  string = "RPM_DEFAULT_RATE"
	EnvKeyRPMDefaultBurst string = "RPM_DEFAULT_BURST"

	EnvKeyRPMReminderPollInterval string = "RPM_REMINDER_POLL_INTERVAL"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameRealtimeHub   string = "realtime_hub"
	LoggerNameRosterCache   string = "roster_cache"

	LoggerFieldCategory          string = "category"
	LoggerCategoryReading        string = "reading"
	LoggerCategoryAlert          string = "alert"
	LoggerCategoryNotification   string = "notification"
	LoggerCategoryLink           string = "link"
	LoggerCategoryReminder       string = "reminder"
	LoggerCategorySession        string = "session"
	LoggerCategorySubscription   string = "subscription"
	LoggerCategoryRosterSnapshot string = "roster"
)
