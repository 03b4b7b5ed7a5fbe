package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/revenue-insights-api/internal/config"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/analyzing/mocks"
)

func newSyncService(t *testing.T, enabled bool) (*AnalysisSyncService, *mocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	appConfig := &config.Config{
		AnalysisSync: config.AnalysisSync{
			CronSchedule: "0 5 * * *",
			UserID:       1,
			Enabled:      enabled,
		},
	}

	return NewAnalysisSyncService(analyzer, appConfig), analyzer
}

func TestAnalysisSyncService_StartDesabilitado(t *testing.T) {
	service, _ := newSyncService(t, false)

	// Desabilitado: não agenda nada e não toca no analisador.
	err := service.Start(context.Background())
	require.NoError(t, err)
}

func TestAnalysisSyncService_RunAnalysis(t *testing.T) {
	service, analyzer := newSyncService(t, true)

	analyzer.EXPECT().
		RunForAll(gomock.Any(), 1).
		Return(&domain.AnalysisSummary{Analyzed: 12, Actionable: 4, Skipped: 2}, nil)

	service.runAnalysis(context.Background())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestAnalysisSyncService_RunAnalysisComErro(t *testing.T) {
	service, analyzer := newSyncService(t, true)

	analyzer.EXPECT().
		RunForAll(gomock.Any(), 1).
		Return(nil, errors.New("banco indisponível"))

	service.runAnalysis(context.Background())

	// A falha não marca a rodada como concluída.
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}
