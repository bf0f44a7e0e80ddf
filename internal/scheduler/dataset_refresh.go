package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stayview/booking-insights-api/infrastructure/repository"
	"github.com/stayview/booking-insights-api/internal/config"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService gerencia o agendamento e execução da recarga do dataset
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	job                 *gocron.Job
	config              DatasetRefreshConfig
	datasetRepo         repository.DatasetRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	runsExecuted        int
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga do dataset
func NewDatasetRefreshService(
	datasetRepo repository.DatasetRepository,
	appConfig *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.RefreshSync.CronSchedule,
		SyncEnabled:  appConfig.RefreshSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		datasetRepo: datasetRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	job, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}
	s.job = job

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset recarrega o dataset a partir da fonte configurada
func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.runsExecuted++
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recarga do dataset")

	snapshot, err := s.datasetRepo.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o dataset")
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"rows":        snapshot.Rows,
		"duration":    time.Since(startTime).String(),
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync inicia manualmente uma recarga do dataset. Retorna false
// quando uma recarga já está em andamento.
func (s *DatasetRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go s.refreshDataset(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"runs_executed":          s.runsExecuted,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.job != nil {
		status["next_run_at"] = s.job.NextRun()
	}

	return status
}
