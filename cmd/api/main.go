package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/eletroclima/fieldops-service/internal/api/http"
	"github.com/eletroclima/fieldops-service/internal/api/http/handlers"
	"github.com/eletroclima/fieldops-service/internal/auth"
	"github.com/eletroclima/fieldops-service/internal/config"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/lookup"
	"github.com/eletroclima/fieldops-service/internal/observability"
	"github.com/eletroclima/fieldops-service/internal/persistence"
	"github.com/eletroclima/fieldops-service/internal/realtime"
	"github.com/eletroclima/fieldops-service/internal/repository"
	"github.com/eletroclima/fieldops-service/internal/service"
	"github.com/eletroclima/fieldops-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	equipmentRepo := repository.NewEquipmentRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	installationRepo := repository.NewInstallationRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	quoteRepo := repository.NewQuoteRepository(pool)
	overtimeRepo := repository.NewOvertimeRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	agendaRepo := repository.NewAgendaRepository(pool)

	metrics := observability.NewMetrics(cfg.App.Name)
	dispatcher := events.NewInMemoryDispatcher()

	lookupHTTP := &http.Client{Timeout: cfg.Lookup.Timeout()}
	cnpjClient := lookup.NewCNPJClient(cfg.Lookup.CNPJBaseURL, lookupHTTP, logger)
	cepClient := lookup.NewCEPClient(cfg.Lookup.CEPBaseURL, lookupHTTP, logger)

	authService := service.NewAuthService(cfg, profileRepo, resetRepo)
	profileService := service.NewProfileService(profileRepo, cfg.Auth.BcryptCost)
	clientService := service.NewClientService(clientRepo, cnpjClient, cepClient)
	equipmentService := service.NewEquipmentService(equipmentRepo, clientRepo)
	orderService := service.NewOrderService(orderRepo, clientRepo, dispatcher)
	appointmentService := service.NewAppointmentService(appointmentRepo, clientRepo, dispatcher)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, clientRepo, dispatcher)
	installationService := service.NewInstallationService(installationRepo, clientRepo, dispatcher)
	ticketService := service.NewTicketService(ticketRepo, clientRepo, dispatcher)
	quoteService := service.NewQuoteService(quoteRepo, clientRepo, dispatcher)
	overtimeService := service.NewOvertimeService(overtimeRepo, dispatcher)
	notificationService := service.NewNotificationService(notificationRepo, redis.Client, logger)
	agendaService := service.NewAgendaService(agendaRepo, clientRepo, profileRepo, dispatcher, metrics)
	searchService := service.NewSearchService(clientRepo, orderRepo, ticketRepo, 0)

	notificationWorker := worker.NewNotificationWorker(notificationService, orderRepo, maintenanceRepo, logger)
	notificationWorker.Register(dispatcher)

	scheduler := worker.NewMaintenanceScheduler(maintenanceRepo, dispatcher, logger, cfg.Scheduler)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("failed to start maintenance scheduler", zap.Error(err))
	}

	hub := realtime.NewHub(redis.Client, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), profileRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(profileService),
		Clients:        handlers.NewClientsHandler(clientService),
		Equipments:     handlers.NewEquipmentsHandler(equipmentService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Installations:  handlers.NewInstallationsHandler(installationService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Quotes:         handlers.NewQuotesHandler(quoteService),
		Overtime:       handlers.NewOvertimeHandler(overtimeService),
		Notifications:  handlers.NewNotificationsHandler(notificationService, hub),
		Agenda:         handlers.NewAgendaHandler(agendaService, cfg.Agenda.UpcomingLimit),
		Search:         handlers.NewSearchHandler(searchService),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	metricsServer := observability.NewMetricsServer(cfg.Metrics, metrics, logger)
	metricsServer.Start()

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	metricsServer.Shutdown(shutdownCtx)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
