// File: vetcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare/config"
	"vetcare/cron"
	"vetcare/database"
	appointmentRepo "vetcare/database/repository/appointment"
	slotRepo "vetcare/database/repository/slot"
	vetRepo "vetcare/database/repository/vet"
	"vetcare/handlers"
	"vetcare/metrics"
	"vetcare/middleware"
	"vetcare/routes"
	"vetcare/services/booking"
	"vetcare/services/slots"
	"vetcare/services/vets"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	cacheClient, err := utils.NewCacheClient(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	utils.StartHealthMonitor(ctx, cacheClient, mongoClient)

	// repositories.
	slotStore := slotRepo.NewMongoSlotRepo(db)
	vetStore := vetRepo.NewMongoVetRepo(db)
	appointmentStore := appointmentRepo.NewMongoAppointmentRepo(db)
	for name, ensure := range map[string]func(context.Context) error{
		"slots":         slotStore.EnsureIndexes,
		"veterinarians": vetStore.EnsureIndexes,
		"appointments":  appointmentStore.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	tx := database.NewMongoTransactor(mongoClient)
	availabilityCache := slots.NewRedisAvailabilityCache(cacheClient, cfg.AvailabilityCacheTTL)
	slotMetrics := metrics.NewSlotMetrics(nil)

	slotService := &slots.DefaultSlotService{
		Repo:    slotStore,
		Vets:    vetStore,
		Tx:      tx,
		Cache:   availabilityCache,
		Metrics: slotMetrics,
		Logger:  logger,
		Policy: slots.Policy{
			WindowDays:       cfg.GenerationWindowDays,
			PeriodGapMinutes: cfg.PeriodGapMinutes,
		},
	}
	bookingService := &booking.DefaultBookingService{
		Slots:        slotStore,
		Appointments: appointmentStore,
		Vets:         vetStore,
		Tx:           tx,
		Cache:        availabilityCache,
		Metrics:      slotMetrics,
		Logger:       logger,
	}
	scheduleService := &vets.DefaultScheduleService{
		Vets:   vetStore,
		Logger: logger,
	}

	// background slot generation.
	worker, err := cron.NewSlotWorker(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}, cfg.SlotGenerationCron, slotService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	slotHandler := handlers.NewSlotHandler(slotService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		JWTSecret:  cfg.JWTSecret,
		CronSecret: cfg.CronSecret,

		GenerateSlotsHandler: slotHandler.GenerateSlotsHandler,

		CheckAvailabilityHandler: slotHandler.CheckAvailabilityHandler,
		SlotStatsHandler:         slotHandler.SlotStatsHandler,
		ListSlotsHandler:         slotHandler.ListSlotsHandler,
		BookableSlotsHandler:     slotHandler.BookableSlotsHandler,

		DeletePeriodHandler:     slotHandler.DeletePeriodHandler,
		DeletePeriodsHandler:    slotHandler.DeletePeriodsHandler,
		DeleteSlotsHandler:      slotHandler.DeleteSlotsHandler,
		UpdateSlotStatusHandler: slotHandler.UpdateSlotStatusHandler,

		BookSlotHandler: bookingHandler.BookSlotHandler,

		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		UpdateScheduleHandler: scheduleHandler.UpdateScheduleHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	stop()

	if err := cacheClient.Close(); err != nil {
		logger.Sugar().Warnf("main: redis close: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}
	_ = logger.Sync()
	logger.Sugar().Info("main: server stopped gracefully")
}
