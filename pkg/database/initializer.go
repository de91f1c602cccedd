package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initializer 数据库初始化器 (建表 + 统计)
type Initializer struct {
	db     *gorm.DB
	models []interface{}
	log    *zap.Logger
}

// TableStat 单表行数
type TableStat struct {
	TableName string
	Rows      int64
}

// NewInitializer 创建初始化器
func NewInitializer(db *gorm.DB, log *zap.Logger, models ...interface{}) *Initializer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Initializer{db: db, models: models, log: log}
}

// Initialize 执行 AutoMigrate 并打印每张表的行数
func (i *Initializer) Initialize(ctx context.Context) ([]TableStat, error) {
	i.log.Info("[DB] migration started", zap.Int("models", len(i.models)))
	start := time.Now()

	if err := i.db.WithContext(ctx).AutoMigrate(i.models...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	stats, err := i.Stats(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range stats {
		i.log.Info("[DB] table ready", zap.String("table", s.TableName), zap.Int64("rows", s.Rows))
	}

	i.log.Info("[DB] migration finished", zap.Duration("elapsed", time.Since(start)))
	return stats, nil
}

// Stats 统计已注册模型对应表的行数
func (i *Initializer) Stats(ctx context.Context) ([]TableStat, error) {
	stats := make([]TableStat, 0, len(i.models))
	for _, m := range i.models {
		stmt := &gorm.Statement{DB: i.db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}

		var rows int64
		if err := i.db.WithContext(ctx).Table(stmt.Schema.Table).Count(&rows).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", stmt.Schema.Table, err)
		}
		stats = append(stats, TableStat{TableName: stmt.Schema.Table, Rows: rows})
	}
	return stats, nil
}
