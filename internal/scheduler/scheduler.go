package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"preview-tracker/internal/metrics"
	"preview-tracker/internal/model"
	"preview-tracker/internal/pkg/config"
	"preview-tracker/internal/repository"
)

const (
	jobStatusSummary = "status_summary"

	defaultSummaryCron = "0 */5 * * * *" // 每5分钟
	summaryTimeout     = 30 * time.Second
)

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	previewRepo   repository.PreviewRepository
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(previewRepo repository.PreviewRepository, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		previewRepo:   previewRepo,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 注册状态统计任务并启动调度器
func (s *Scheduler) Start(cfg *config.SummaryConfig) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.Cron
	if cronExpr == "" {
		cronExpr = defaultSummaryCron
		log.Warnw("未配置summary.cron，使用默认值", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		if _, err := s.RunSummary(ctx); err != nil {
			log.Errorf("预览环境状态统计任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册状态统计任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules[jobStatusSummary] = entryID
	log.Infof("状态统计任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// RunSummary 统计各状态的预览环境数量，刷新 previews_by_status 指标
// 未出现的状态记为 0；只读，不修改任何记录
func (s *Scheduler) RunSummary(ctx context.Context) (map[model.PreviewStatus]int64, error) {
	counts, err := s.previewRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totals := lo.SliceToMap(counts, func(c model.PreviewStatusCount) (model.PreviewStatus, int64) {
		return c.Status, c.Total
	})

	fields := make([]zap.Field, 0, len(model.PreviewStatuses))
	for _, status := range model.PreviewStatuses {
		total := totals[status]
		totals[status] = total
		metrics.PreviewsByStatus.WithLabelValues(string(status)).Set(float64(total))
		fields = append(fields, zap.Int64(string(status), total))
	}

	s.logger.Info("预览环境状态统计", fields...)
	return totals, nil
}
