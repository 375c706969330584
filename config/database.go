package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// gormWriter 把gorm的日志转到zap
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func newGormLogger(environment string) logger.Interface {
	level := logger.Info
	if environment == "production" {
		level = logger.Warn
	}
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// InitDB 初始化数据库连接，表结构由外部迁移维护
func InitDB(config Config) error {
	var err error
	DB, err = gorm.Open(mysql.Open(config.GetDBConnString()), &gorm.Config{
		Logger: newGormLogger(config.Environment),
	})
	if err != nil {
		return fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	Logger.Infow("数据库已连接", "host", config.DBHost, "db", config.DBName)
	return nil
}
