package task

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_purger_test.go -package=task family_shopping/internal/task Purger

// Purger 删除 cutoff 之前购买的清单条目，由 ShoppingService 实现
type Purger interface {
	PurgePurchasedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionTask 已购买条目定时清理
type RetentionTask struct {
	purger   Purger
	log      *zap.Logger
	Cron     *cron.Cron
	schedule string
	keep     time.Duration
	timeout  time.Duration

	now func() time.Time
}

func NewRetentionTask(purger Purger, log *zap.Logger, schedule string, keepDays int) *RetentionTask {
	return &RetentionTask{
		purger:   purger,
		log:      log.Named("retention"),
		Cron:     cron.New(cron.WithSeconds()), // 支持秒级控制
		schedule: schedule,
		keep:     time.Duration(keepDays) * 24 * time.Hour,
		timeout:  time.Minute,
		now:      time.Now,
	}
}

// Start 注册定时任务并启动调度，schedule 非法时返回错误
func (t *RetentionTask) Start() error {
	_, err := t.Cron.AddFunc(t.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		if _, err := t.Execute(ctx); err != nil {
			t.log.Error("[Retention] purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule retention %q: %w", t.schedule, err)
	}

	t.Cron.Start()
	t.log.Info("[Retention] 定时清理已启动",
		zap.String("schedule", t.schedule),
		zap.Duration("keep", t.keep),
	)
	return nil
}

// Stop 停止调度并等待正在执行的清理结束
func (t *RetentionTask) Stop() {
	<-t.Cron.Stop().Done()
	t.log.Info("[Retention] 定时清理已停止")
}

// Cutoff 早于该时间购买的条目会被清理
func (t *RetentionTask) Cutoff() time.Time {
	return t.now().Add(-t.keep)
}

// Execute 执行一次清理
func (t *RetentionTask) Execute(ctx context.Context) (int64, error) {
	cutoff := t.Cutoff()
	n, err := t.purger.PurgePurchasedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	t.log.Info("[Retention] purge finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("removed", n),
	)
	return n, nil
}
