package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-insights-api/internal/config"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/analyzing"
)

// AnalysisSyncConfig representa a configuração do agendador de reanálise
type AnalysisSyncConfig struct {
	CronSchedule string
	UserID       int
	SyncEnabled  bool
}

// AnalysisSyncService reprocessa a análise de receita em horário agendado,
// para que os vereditos acompanhem as importações do dia sem ação manual.
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de reanálise agendada
func NewAnalysisSyncService(analyzer analyzing.Analyzer, appConfig *config.Config) *AnalysisSyncService {
	syncConfig := AnalysisSyncConfig{
		CronSchedule: appConfig.AnalysisSync.CronSchedule,
		UserID:       appConfig.AnalysisSync.UserID,
		SyncEnabled:  appConfig.AnalysisSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"user_id":       syncConfig.UserID,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reanálise de receita carregada")

	return &AnalysisSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		analyzer:    analyzer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reanálise agendada de receita desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reanálise de receita")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAnalysis(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reanálise de receita: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reanálise de receita")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AnalysisSyncService) runAnalysis(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reanálise de receita já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("user_id", s.config.UserID).Info("Iniciando reanálise agendada de receita")

	summary, err := s.analyzer.RunForAll(ctx, s.config.UserID)
	if err != nil {
		logrus.WithError(err).Error("Erro na reanálise agendada de receita")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"analyzed":   summary.Analyzed,
		"actionable": summary.Actionable,
		"skipped":    summary.Skipped,
	}).Info("Reanálise agendada de receita concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma reanálise
func (s *AnalysisSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reanálise de receita já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reanálise manual de receita")
	go s.runAnalysis(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_user_id":           s.config.UserID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
