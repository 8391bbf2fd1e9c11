package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tahmid-rahman/slotmind/libs/config"
	"github.com/tahmid-rahman/slotmind/libs/db"
	"github.com/tahmid-rahman/slotmind/libs/httpx"
	"github.com/tahmid-rahman/slotmind/libs/kafkax"
	otelx "github.com/tahmid-rahman/slotmind/libs/otel"
	"github.com/tahmid-rahman/slotmind/libs/runtime"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/consumer"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/handlers"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/inbox"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/preferences"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/schedule"
	"github.com/tahmid-rahman/slotmind/services/availability-service/internal/storage"
)

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func windowLimits(logger *slog.Logger) schedule.WindowLimits {
	limits := schedule.WindowLimits{}
	if v, err := strconv.Atoi(config.String("MAX_WINDOW_DAYS", "7")); err == nil && v > 0 {
		limits.MaxDays = v
	} else {
		logger.Warn("invalid MAX_WINDOW_DAYS, using default")
	}
	if v, err := strconv.Atoi(config.String("MIN_WINDOW_MINUTES", "120")); err == nil && v > 0 {
		limits.MinWindow = time.Duration(v) * time.Minute
	} else {
		logger.Warn("invalid MIN_WINDOW_MINUTES, using default")
	}
	return limits
}

func fallbackPolicy(logger *slog.Logger) schedule.Policy {
	zone := config.String("DEFAULT_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(zone)
	if err != nil {
		logger.Warn("invalid DEFAULT_TIMEZONE, using UTC", "value", zone)
		loc = time.UTC
	}
	pol := schedule.DefaultPolicy(loc)
	if v, err := strconv.Atoi(config.String("DEFAULT_SLOT_MINUTES", "30")); err == nil && v > 0 {
		pol.SlotDuration = time.Duration(v) * time.Minute
	}
	return pol
}

func main() {
	service := config.String("SERVICE_NAME", "availability-service")
	port, err := config.Port("PORT", "8086")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	limits := windowLimits(logger)
	fallback := fallbackPolicy(logger)

	// The engine itself is pure; storage only backs attendee lookup by user id
	// and the calendar-sync feed. Without DATABASE_URL the service still
	// computes availability from inline request data.
	var pool *db.Pool
	var calendarRepo *storage.CalendarRepository
	var prefsProvider preferences.Provider
	readyChecks := []runtime.ReadyCheck{}
	if dbURL := config.String("DATABASE_URL", ""); dbURL != "" {
		pool, err = db.Open(ctx, dbURL)
		if err != nil {
			logger.Error("db connection failed", "err", err)
			panic(err)
		}
		defer pool.Close()
		calendarRepo = storage.NewCalendarRepository(pool)
		prefsProvider = preferences.NewStorageProvider(storage.NewPreferenceRepository(pool), logger, fallback)
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)})
	} else {
		logger.Info("no DATABASE_URL configured, running stateless")
		prefsProvider, err = preferences.NewRemoteProvider(logger, fallback, config.String("PREFERENCES_GRPC_ADDR", ""))
		if err != nil {
			logger.Error("preference provider init failed, using fallback", "err", err)
			prefsProvider = preferences.NewStaticProvider(fallback)
		}
	}

	// Calendar-sync feed: upstream providers push event changes; this keeps
	// stored busy intervals current without the engine doing any I/O.
	if brokers := config.String("KAFKA_BROKERS", ""); brokers != "" && pool != nil {
		inboxRepo := inbox.NewRepository(pool)
		eventConsumer := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: brokers,
			GroupID: config.String("KAFKA_GROUP_ID", "availability-service"),
			Topic:   config.String("KAFKA_CONSUME_TOPIC", "calendar.event.changed.v1"),
		}, calendarEventHandler(logger, calendarRepo))
		go eventConsumer.Run(ctx)
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)})
	}

	availabilityHandler := handlers.NewAvailabilityHandler(logger, prefsProvider, calendarRepo, limits)

	mux := runtime.NewBaseMuxWithReady(readyChecks...)
	mux.HandleFunc("/api/v1/availability/slots", availabilityHandler.Slots)
	mux.HandleFunc("/api/v1/availability/meeting-assist", availabilityHandler.MeetingAssist)
	if pool != nil {
		prefHandler := handlers.NewPreferenceHandler(storage.NewPreferenceRepository(pool), logger)
		mux.HandleFunc("/api/v1/preferences", prefHandler.Handle)
	}

	limitPerMinute := 60
	if v, err := strconv.Atoi(config.String("RATE_LIMIT_PER_MINUTE", "60")); err == nil && v > 0 {
		limitPerMinute = v
	}
	var rateLimitMW httpx.Middleware
	if addr := strings.TrimSpace(config.String("REDIS_ADDR", "")); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
		})
		defer func() { _ = rdb.Close() }()
		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, true)
		logger.Info("rate limiting enabled (redis)", "per_minute", limitPerMinute, "redis_addr", addr)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
		logger.Info("rate limiting enabled (in-memory)", "per_minute", limitPerMinute)
	}

	requestTimeout := 10 * time.Second
	if v, err := strconv.Atoi(config.String("REQUEST_TIMEOUT_SECONDS", "10")); err == nil && v > 0 {
		requestTimeout = time.Duration(v) * time.Second
	}

	corsOrigins := parseList(config.String("CORS_ALLOWED_ORIGINS", ""))
	httpHandler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
			MaxAge:         10 * time.Minute,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(1<<20),
		httpx.WithTimeout(requestTimeout),
		rateLimitMW,
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "availability")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

// calendarEventHandler applies one calendar-feed message to the event store.
// Malformed payloads are logged and dropped; transient db errors are returned
// so the consumer can surface them.
func calendarEventHandler(logger *slog.Logger, repo *storage.CalendarRepository) consumer.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			UserID     string `json:"user_id"`
			ExternalID string `json:"external_id"`
			StartTime  string `json:"start_time"`
			EndTime    string `json:"end_time"`
			Deleted    bool   `json:"deleted"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
			return nil
		}
		if payload.UserID == "" || payload.ExternalID == "" {
			logger.Error("missing required event fields", "topic", msg.Topic)
			return nil
		}

		if payload.Deleted {
			return repo.DeleteEvent(ctx, payload.UserID, payload.ExternalID)
		}

		start, err := time.Parse(time.RFC3339, payload.StartTime)
		if err != nil {
			logger.Error("invalid start_time in event", "err", err)
			return nil
		}
		end, err := time.Parse(time.RFC3339, payload.EndTime)
		if err != nil || !end.After(start) {
			logger.Error("invalid end_time in event", "err", err)
			return nil
		}

		_, err = repo.UpsertEvent(ctx, storage.CalendarEvent{
			UserID:     payload.UserID,
			ExternalID: payload.ExternalID,
			StartTime:  start.UTC(),
			EndTime:    end.UTC(),
		})
		return err
	}
}
