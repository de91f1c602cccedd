package task

import (
	"context"

	"go.uber.org/zap"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台任务，目前只有已购买条目的定时清理
type TaskManager struct {
	retentionTask *RetentionTask
	log           *zap.Logger
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Purger Purger
	Logger *zap.Logger
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	RetentionEnabled  bool
	RetentionSchedule string
	RetentionKeepDays int
}

// DefaultConfig 默认配置，清理任务默认关闭
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		RetentionEnabled:  false,
		RetentionSchedule: "0 30 3 * * *",
		RetentionKeepDays: 30,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tm := &TaskManager{log: log.Named("task")}
	if cfg.RetentionEnabled && deps.Purger != nil {
		tm.retentionTask = NewRetentionTask(deps.Purger, log, cfg.RetentionSchedule, cfg.RetentionKeepDays)
	}
	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() error {
	if tm.retentionTask != nil {
		if err := tm.retentionTask.Start(); err != nil {
			return err
		}
	}
	tm.log.Info("[TaskManager] 后台任务已启动", zap.Any("status", tm.Status()))
	return nil
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	if tm.retentionTask != nil {
		tm.retentionTask.Stop()
	}
	tm.log.Info("[TaskManager] 后台任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerRetention 立即执行一次清理
func (tm *TaskManager) TriggerRetention(ctx context.Context) (int64, error) {
	if tm.retentionTask == nil {
		return 0, ErrTaskDisabled
	}
	return tm.retentionTask.Execute(ctx)
}

// ==================== 状态查询 ====================

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"retention": tm.retentionTask != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
)
