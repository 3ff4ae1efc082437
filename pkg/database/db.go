package database

import (
	"brainvault/config"
	"brainvault/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 按驱动打开连接；TranslateError 让唯一键冲突统一成 gorm.ErrDuplicatedKey
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpen)
	}
	if conf.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdle)
	}
	return db, nil
}

// NewDB 初始化数据库连接，返回的 cleanup 在进程退出时关闭连接池
func NewDB(conf *config.Config) (*gorm.DB, func(), error) {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	if conf.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, nil, err
		}
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.L.Info("database closed")
	}
	return db, cleanup, nil
}
