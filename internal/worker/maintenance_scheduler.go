package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/agenda"
	"github.com/eletroclima/fieldops-service/internal/config"
	"github.com/eletroclima/fieldops-service/internal/events"
	"github.com/eletroclima/fieldops-service/internal/repository"
)

// MaintenanceScheduler runs a daily sweep over active contracts and raises a
// maintenance-due event for every visit inside the lead window.
type MaintenanceScheduler struct {
	contracts  repository.MaintenanceRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.SchedulerConfig
	cron       *cron.Cron
}

// NewMaintenanceScheduler constructs the scheduler.
func NewMaintenanceScheduler(contracts repository.MaintenanceRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.SchedulerConfig) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		contracts:  contracts,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// Start schedules the sweep. A bad cron spec fails startup rather than
// silently never running.
func (s *MaintenanceScheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("maintenance scheduler disabled")
		return nil
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.CronSpec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("maintenance scheduler started",
		zap.String("spec", s.cfg.CronSpec),
		zap.Int("lead_time_days", s.cfg.LeadTimeDays))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *MaintenanceScheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep runs one pass immediately, used at startup and by tests.
func (s *MaintenanceScheduler) Sweep(ctx context.Context) {
	deadline := time.Now().AddDate(0, 0, s.cfg.LeadTimeDays)
	contracts, err := s.contracts.ListDueBy(ctx, deadline)
	if err != nil {
		s.logger.Error("maintenance sweep failed", zap.Error(err))
		return
	}
	for _, contract := range contracts {
		s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventMaintenanceDue,
			Payload: events.MaintenanceDuePayload{
				ContractID: contract.ID,
				ClientID:   contract.ClientID,
				DueDate:    contract.NextMaintenanceDate.Format(agenda.DateLayout),
			},
		})
	}
	if len(contracts) > 0 {
		s.logger.Info("maintenance sweep", zap.Int("due_contracts", len(contracts)))
	}
}

func (s *MaintenanceScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	s.Sweep(ctx)
}
