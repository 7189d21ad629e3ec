package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"preview-tracker/internal/metrics"
	"preview-tracker/internal/model"
	"preview-tracker/internal/pkg/config"
	"preview-tracker/internal/repository"
)

type countingRepo struct {
	repository.PreviewRepository
	counts []model.PreviewStatusCount
	err    error
	calls  int
}

func (r *countingRepo) CountByStatus(context.Context) ([]model.PreviewStatusCount, error) {
	r.calls++
	return r.counts, r.err
}

func TestRunSummaryFillsMissingStatuses(t *testing.T) {
	repo := &countingRepo{counts: []model.PreviewStatusCount{
		{Status: model.PreviewStatusReady, Total: 3},
		{Status: model.PreviewStatusError, Total: 1},
	}}
	s := NewScheduler(repo, zap.NewNop())

	totals, err := s.RunSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[model.PreviewStatus]int64{
		model.PreviewStatusReady: 3,
		model.PreviewStatusDown:  0,
		model.PreviewStatusError: 1,
	}, totals)
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.PreviewsByStatus.WithLabelValues("ready")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PreviewsByStatus.WithLabelValues("down")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PreviewsByStatus.WithLabelValues("error")))
}

func TestRunSummaryPropagatesStorageError(t *testing.T) {
	repo := &countingRepo{err: errors.New("db down")}
	s := NewScheduler(repo, zap.NewNop())

	totals, err := s.RunSummary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, totals)
	assert.Equal(t, 1, repo.calls)
}

func TestStartRejectsInvalidCron(t *testing.T) {
	s := NewScheduler(&countingRepo{}, zap.NewNop())

	err := s.Start(&config.SummaryConfig{Enabled: true, Cron: "not a cron"})
	assert.Error(t, err)
	assert.Empty(t, s.cronSchedules)
}

func TestStartRegistersSummaryJob(t *testing.T) {
	s := NewScheduler(&countingRepo{}, zap.NewNop())

	require.NoError(t, s.Start(&config.SummaryConfig{Enabled: true}))
	defer s.Stop()

	entryID, ok := s.cronSchedules[jobStatusSummary]
	require.True(t, ok)
	assert.True(t, s.cron.Entry(entryID).Valid())
}
