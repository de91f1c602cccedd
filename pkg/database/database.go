package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options 数据库连接参数
type Options struct {
	Driver   string // postgres | sqlite
	DSN      string
	LogLevel string // silent | error | warn | info
	Logger   *zap.Logger
}

// InitDB 初始化数据库连接
// models: 需要自动建表/迁移的结构体指针，为空则只建立连接
func InitDB(opts Options, models ...interface{}) (*gorm.DB, error) {
	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(opts.Logger, opts.LogLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// 获取底层的 sqlDB 对象，用于设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if opts.Driver == DriverSQLite {
		// SQLite 单写者；内存库每个连接都是独立的库，只能保留一个连接且不能过期
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		return postgres.Open(opts.DSN), nil
	case DriverSQLite, "":
		dsn := opts.DSN
		if dsn == "" {
			dsn = "family_shopping.db"
		}
		return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: withForeignKeys(dsn)}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// withForeignKeys SQLite 默认不检查外键，级联删除依赖它
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func newGormLogger(zl *zap.Logger, level string) logger.Interface {
	if zl == nil {
		return logger.Default.LogMode(parseLogLevel(level))
	}
	return logger.New(
		zap.NewStdLog(zl.Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
